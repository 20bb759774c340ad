// Package walker handles directory traversal and file processing
package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/files-to-prompt/internal/ignore"
	"github.com/bethropolis/files-to-prompt/internal/pattern"
)

// Exists checks that path is present on the filesystem
func Exists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("walker: cannot access %s: %w", path, err)
	}
	return nil
}

// Walk emits root, or every file below it that passes the filters.
//
// A file root is emitted as is; filters only apply to entries reached by
// recursion. Rule files are loaded into rules from root's parent, from root
// itself and from every directory descended into, before that directory is
// checked against them. Per-entry problems are logged and skipped; the
// returned error is either ErrPathNotFound or a failure from walkFn.
func Walk(root string, rules ignore.Store, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Patterns == nil {
		options.Patterns = pattern.New(pattern.DefaultCacheSize, pattern.WithLogger(options.Logger))
	}
	if rules == nil {
		rules = ignore.Disabled{}
	}

	tracker := NewSkippedTracker(16)

	if err := Exists(root); err != nil {
		return nil, err
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("walker: cannot access %s: %w", root, err)
	}

	rules.LoadDir(filepath.Dir(root))

	if !info.IsDir() {
		options.Logger.Debug("walker.Walk: %s is a file, emitting without filters", root)
		return tracker.Items(), processFile(root, false, options, walkFn, tracker)
	}

	walkRoot := root
	if lst, err := os.Lstat(root); err == nil && lst.Mode()&fs.ModeSymlink != 0 {
		// WalkDir does not descend into a symlinked root; a trailing
		// separator makes the lookup resolve the link
		walkRoot = root + string(filepath.Separator)
	}

	options.Logger.Debug("walker.Walk started. Root: %s", root)

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		isDir := d != nil && d.IsDir()
		isRoot := path == walkRoot
		if !isRoot {
			path = underRoot(root, walkRoot, path)
		}

		if err != nil {
			options.Logger.Warn("Skipping entry due to error: %v", err)
			tracker.Track(path, reasonFor(err), isDir)
			if isDir && !isRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if isRoot {
			rules.LoadDir(root)
			return nil
		}

		name := d.Name()

		if isDir {
			if !options.IncludeHidden && isHidden(name) {
				options.Logger.Debug("Walker: Pruning hidden directory %q", path)
				tracker.Track(path, ReasonIgnoredHidden, true)
				return filepath.SkipDir
			}
			rules.LoadDir(path)
			if rules.IsIgnored(path, true) {
				options.Logger.Debug("Walker: Pruning ignored directory %q", path)
				tracker.Track(path, ReasonIgnoredGitignore, true)
				return filepath.SkipDir
			}
			return nil
		}

		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				options.Logger.Warn("Skipping entry due to error: %v", err)
				tracker.Track(path, reasonFor(err), false)
				return nil
			}
			if target.IsDir() {
				options.Logger.Debug("Walker: Not following symlinked directory %q", path)
				tracker.Track(path, ReasonSkippedSymlinkDir, false)
				return nil
			}
			mode = target.Mode().Type()
		}
		if !mode.IsRegular() {
			options.Logger.Debug("Walker: Skipping %q: not a regular file", path)
			tracker.Track(path, ReasonSkippedNotRegular, false)
			return nil
		}

		if reason, skip := filterFile(path, rules, options); skip {
			options.Logger.Debug("Walker: Skipping %q: %s", path, reason)
			tracker.Track(path, reason, false)
			return nil
		}

		options.Logger.Debug("Walker: File %q PASSED all checks, will be processed", path)
		return processFile(path, true, options, walkFn, tracker)
	})

	return tracker.Items(), err
}

// underRoot respells a path found by WalkDir with root exactly as the caller
// wrote it. WalkDir cleans the paths it builds, so a walk of "." would
// otherwise yield "a.txt" instead of "./a.txt".
func underRoot(root, walkRoot, path string) string {
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + rel
	}
	return root + string(filepath.Separator) + rel
}
