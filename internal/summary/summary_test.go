package summary

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/files-to-prompt/internal/logger"
	"github.com/bethropolis/files-to-prompt/internal/walker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayResults(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, false, false).WithLevel(logger.LevelInfo)

	DisplayResults(log, 3, 1500*time.Microsecond)
	assert.Contains(t, buf.String(), "Found and processed 3 files.")
	assert.Contains(t, buf.String(), "Run complete in 2ms.")
}

func TestDisplaySkippedItemsSorted(t *testing.T) {
	var out bytes.Buffer
	items := []walker.SkippedItem{
		{Path: "z.bin", Reason: walker.ReasonSkippedNotText},
		{Path: "a/.git", Reason: walker.ReasonIgnoredHidden, IsDir: true},
	}

	require.NoError(t, DisplaySkippedItems(logger.Nop{}, items, &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Skipped DIR : a/.git ["+string(walker.ReasonIgnoredHidden)+"]", lines[0])
	assert.Equal(t, "Skipped FILE: z.bin ["+string(walker.ReasonSkippedNotText)+"]", lines[1])
	assert.Equal(t, "z.bin", items[0].Path, "input slice is left untouched")
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	var out, diag bytes.Buffer
	log := logger.New(&diag, false, false).WithLevel(logger.LevelInfo)

	require.NoError(t, DisplaySkippedItems(log, nil, &out))
	assert.Empty(t, out.String())
	assert.Contains(t, diag.String(), "No items were skipped.")
	assert.Contains(t, diag.String(), "--- End Skipped Items ---")
}
