// Package pattern matches shell-style globs against base names.
//
// Supported syntax is the usual `*`, `?`, `[...]` and `[!...]`. Braces and
// backslashes are literal characters, so `file{1}.txt` names exactly that
// file. There is no path separator awareness and no recursive `**`: patterns
// are only ever matched against a single path component. A pattern that
// fails to compile never matches anything and is reported once per Matcher.
package pattern

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of compiled patterns kept in memory
const DefaultCacheSize = 512

// literal turns the characters gobwas/glob treats as syntax beyond
// `*`, `?` and `[...]` into escaped literals
var literal = strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`)

// compiled is a cache entry; g is nil for malformed patterns
type compiled struct {
	g glob.Glob
}

// Matcher compiles and caches glob patterns
type Matcher struct {
	cache    *lru.Cache[string, compiled]
	logger   logger.Interface
	reported map[string]struct{} // malformed patterns already warned about
}

// Option configures a Matcher
type Option func(*Matcher)

// WithLogger sets the logger used to report malformed patterns
func WithLogger(l logger.Interface) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a Matcher holding at most size compiled patterns
func New(size int, opts ...Option) *Matcher {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size
	cache, _ := lru.New[string, compiled](size)

	m := &Matcher{
		cache:    cache,
		logger:   logger.Nop{},
		reported: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match reports whether name matches pattern
func (m *Matcher) Match(pattern, name string) bool {
	c := m.compile(pattern)
	if c.g == nil {
		return false
	}
	return c.g.Match(name)
}

// MatchAny reports whether name matches at least one of patterns
func (m *Matcher) MatchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if m.Match(p, name) {
			return true
		}
	}
	return false
}

// Valid reports whether pattern compiles
func (m *Matcher) Valid(pattern string) bool {
	return m.compile(pattern).g != nil
}

func (m *Matcher) compile(pattern string) compiled {
	if c, ok := m.cache.Get(pattern); ok {
		return c
	}

	g, err := glob.Compile(literal.Replace(pattern))
	if err != nil {
		if _, seen := m.reported[pattern]; !seen {
			m.reported[pattern] = struct{}{}
			m.logger.Warn("Ignoring malformed pattern %q: %v", pattern, err)
		}
		g = nil
	}
	c := compiled{g: g}
	m.cache.Add(pattern, c)
	return c
}
