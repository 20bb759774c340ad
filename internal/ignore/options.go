package ignore

import (
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/pattern"
)

// Option functions for configuration
type Option func(*settings)

func WithLogger(l logger.Interface) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPatternMatcher shares a compiled-pattern cache with other components
func WithPatternMatcher(m *pattern.Matcher) Option {
	return func(s *settings) {
		if m != nil {
			s.patterns = m
		}
	}
}

func apply(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.patterns == nil {
		s.patterns = pattern.New(pattern.DefaultCacheSize, pattern.WithLogger(s.logger))
	}
	return s
}
