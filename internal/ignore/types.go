// Package ignore provides file/directory pattern matching for exclusion
package ignore

import (
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/pattern"
)

// FileName is the per-directory rule file the stores look for
const FileName = ".gitignore"

// Store accumulates ignore rules while a traversal descends and answers
// whether a path is excluded by them. One Store is shared by a whole run.
type Store interface {
	// LoadDir picks up the rule file directly inside dir, if any.
	// Missing or unreadable files are not an error.
	LoadDir(dir string)
	// IsIgnored reports whether path is excluded by the rules loaded so far
	IsIgnored(path string, isDir bool) bool
}

// Config holds configuration options for building a Store
type Config struct {
	Strict   bool
	Disabled bool
	Patterns *pattern.Matcher
	Logger   logger.Interface
}

// settings is shared by every Store implementation
type settings struct {
	patterns *pattern.Matcher
	logger   logger.Interface
}

func defaultSettings() settings {
	return settings{logger: logger.Nop{}}
}
