// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/walker"
)

// pathWidth caps the path column of the skipped list
const pathWidth = 50

// DisplayResults reports how many files were emitted and how long it took
func DisplayResults(log logger.Interface, fileCount int64, duration time.Duration) {
	log.Info("Found and processed %d files.", fileCount)
	log.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every skipped entry, sorted by path, to output
func DisplaySkippedItems(log logger.Interface, skippedItems []walker.SkippedItem, output io.Writer) error {
	log.Info("--- Skipped Items (%d) ---", len(skippedItems))
	defer log.Info("--- End Skipped Items ---")

	if len(skippedItems) == 0 {
		log.Info("No items were skipped.")
		return nil
	}

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // aligned with FILE
		}
		if _, err := fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n", typeStr, pathWidth, item.Path, item.Reason); err != nil {
			return err
		}
	}
	return nil
}
