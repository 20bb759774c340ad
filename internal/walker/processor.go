// Package walker handles directory traversal and file processing
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/files-to-prompt/internal/ignore"
)

// ContentReader reads the full text of a file
type ContentReader interface {
	ReadText(path string) (string, error)
}

// FileReader reads from the local filesystem and rejects non-UTF-8 content
type FileReader struct{}

// ReadText returns the content of path, or ErrNotText
func (FileReader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrNotText
	}
	return string(data), nil
}

// filterFile applies the recursion filters in order: hidden, rule store,
// custom patterns, extension allow-list
func filterFile(path string, rules ignore.Store, options WalkOptions) (SkippedReason, bool) {
	name := filepath.Base(path)

	if !options.IncludeHidden && isHidden(name) {
		return ReasonIgnoredHidden, true
	}
	if rules.IsIgnored(path, false) {
		return ReasonIgnoredGitignore, true
	}
	if options.Patterns.MatchAny(options.IgnorePatterns, name) {
		return ReasonIgnoredPattern, true
	}
	if len(options.ExtensionMap) > 0 {
		if _, ok := options.ExtensionMap[extension(name)]; !ok {
			return ReasonFilteredExtension, true
		}
	}
	return "", false
}

// processFile reads one file and hands it to walkFn. Read problems are
// logged and tracked; only an error from walkFn is returned.
func processFile(path string, recursed bool, options WalkOptions, walkFn WalkFunc, tracker *SkippedTracker) error {
	options.Logger.Debug("processFile: Reading [%s]", path)

	// The size limit is a recursion filter; named files always pass
	if recursed && options.MaxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			options.Logger.Warn("Skipping entry due to error: %v", err)
			tracker.Track(path, reasonFor(err), false)
			return nil
		}
		if info.Size() > options.MaxFileSize {
			options.Logger.Debug("processFile Skipping [%s]: Exceeds size limit (%d > %d bytes)",
				path, info.Size(), options.MaxFileSize)
			tracker.Track(path, ReasonSkippedSizeLimit, false)
			return nil
		}
	}

	content, err := options.Reader.ReadText(path)
	if err != nil {
		options.Logger.Warn("Skipping file %s due to %v", path, err)
		if errors.Is(err, ErrNotText) {
			tracker.Track(path, ReasonSkippedNotText, false)
		} else {
			tracker.Track(path, ReasonSkippedReadError, false)
		}
		return nil
	}

	options.Logger.Debug("processFile Success [%s]: Read %d bytes", path, len(content))
	if err := walkFn(path, content); err != nil {
		return fmt.Errorf("walker: emitting %s: %w", path, err)
	}
	return nil
}

func reasonFor(err error) SkippedReason {
	if errors.Is(err, fs.ErrPermission) {
		return ReasonSkippedPermError
	}
	return ReasonSkippedWalkError
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// extension returns the lower-cased extension of name without the dot.
// A leading dot does not start an extension: ".bashrc" has none.
func extension(name string) string {
	if isHidden(name) {
		name = name[1:]
	}
	return normalizeExtension(filepath.Ext(name))
}
