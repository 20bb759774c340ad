// Package walker handles directory traversal and file processing
package walker

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/pattern"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger         logger.Interface
	Reader         ContentReader
	Patterns       *pattern.Matcher
	IgnorePatterns []string
	ExtensionMap   map[string]struct{}
	MaxFileSize    int64
	IncludeHidden  bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:       logger.Nop{},
		Reader:       FileReader{},
		MaxFileSize:  0,   // No limit
		ExtensionMap: nil, // No extension filtering by default
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Interface) Option {
	return func(opts *WalkOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithReader replaces the content reader
func WithReader(r ContentReader) Option {
	return func(opts *WalkOptions) {
		if r != nil {
			opts.Reader = r
		}
	}
}

// WithPatternMatcher shares a compiled-pattern cache
func WithPatternMatcher(m *pattern.Matcher) Option {
	return func(opts *WalkOptions) {
		if m != nil {
			opts.Patterns = m
		}
	}
}

// WithIgnorePatterns excludes recursed files whose base name matches any pattern
func WithIgnorePatterns(patterns []string) Option {
	return func(opts *WalkOptions) {
		opts.IgnorePatterns = append([]string(nil), patterns...)
	}
}

// WithMaxFileSize sets the maximum file size to read in bytes
func WithMaxFileSize(maxBytes int64) Option {
	return func(opts *WalkOptions) {
		opts.MaxFileSize = maxBytes
	}
}

// WithExtensions sets the file extensions to include. A leading dot is
// optional and the comparison is case-insensitive.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		if len(extensions) == 0 {
			opts.ExtensionMap = nil
			return
		}
		extMap := make(map[string]struct{}, len(extensions))
		for _, ext := range extensions {
			extMap[normalizeExtension(ext)] = struct{}{}
		}
		opts.ExtensionMap = extMap
	}
}

// WithIncludeHidden includes files and directories whose name starts with a dot
func WithIncludeHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IncludeHidden = enabled
	}
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
