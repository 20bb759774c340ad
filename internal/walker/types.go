// Package walker handles directory traversal and file processing
package walker

import (
	"errors"
)

var (
	// ErrPathNotFound is returned when an input path does not exist
	ErrPathNotFound = errors.New("path does not exist")
	// ErrNotText is returned by a ContentReader for content that is not valid UTF-8 text
	ErrNotText = errors.New("stream did not contain valid UTF-8")
)

// WalkFunc receives every emitted file. A non-nil error aborts the walk.
type WalkFunc func(path string, content string) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGitignore  SkippedReason = "Ignored (Gitignore Rule)"
	ReasonIgnoredPattern    SkippedReason = "Ignored (Custom Pattern)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedSizeLimit  SkippedReason = "Skipped (Size Limit Exceeded)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
	ReasonSkippedNotText    SkippedReason = "Skipped (Not Valid Text)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker records skipped items in the order they were seen
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
