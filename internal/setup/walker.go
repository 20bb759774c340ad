// Package setup provides initialization and configuration functions
package setup

import (
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/config"
	"github.com/bethropolis/files-to-prompt/internal/ignore"
	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/pattern"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// ConfigureWalker sets up an ignore store and walker options based on the config.
// Both share one pattern cache, so a glob used by --ignore and a .gitignore
// is compiled once per run.
func ConfigureWalker(cfg *config.Config, log logger.Interface) (ignore.Store, []walker.Option) {
	if log == nil {
		log = logger.Nop{}
	}
	patterns := pattern.New(pattern.DefaultCacheSize, pattern.WithLogger(log))

	if len(cfg.IgnorePatterns) > 0 {
		log.Info("Using custom ignore patterns: %v", cfg.IgnorePatterns)
	}

	if len(cfg.Extensions) > 0 {
		shown := make([]string, len(cfg.Extensions))
		for i, ext := range cfg.Extensions {
			shown[i] = "." + ext
		}
		log.Info("Filtering enabled. Only including extensions: %s", strings.Join(shown, ", "))
	} else {
		log.Info("No extension filtering (including all file types).")
	}

	if cfg.IncludeHidden {
		log.Info("Including hidden files/directories.")
	} else {
		log.Info("Ignoring hidden files/directories (starting with '.').")
	}

	switch {
	case cfg.IgnoreGitignore:
		log.Info("Not reading %s files.", ignore.FileName)
	case cfg.StrictGitignore:
		log.Info("Applying %s files with full, directory-scoped semantics.", ignore.FileName)
	}

	store := ignore.NewFromConfig(ignore.Config{
		Strict:   cfg.StrictGitignore,
		Disabled: cfg.IgnoreGitignore,
		Patterns: patterns,
		Logger:   log,
	})

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithPatternMatcher(patterns),
		walker.WithIncludeHidden(cfg.IncludeHidden),
	}
	if len(cfg.IgnorePatterns) > 0 {
		walkOptions = append(walkOptions, walker.WithIgnorePatterns(cfg.IgnorePatterns))
	}
	if len(cfg.Extensions) > 0 {
		walkOptions = append(walkOptions, walker.WithExtensions(cfg.Extensions))
	}
	if cfg.MaxFileSizeMB > 0 {
		walkOptions = append(walkOptions, walker.WithMaxFileSize(cfg.MaxFileSizeBytes()))
		log.Info("Ignoring files larger than %d MB.", cfg.MaxFileSizeMB)
	}

	return store, walkOptions
}
