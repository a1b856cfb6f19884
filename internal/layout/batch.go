// ABOUTME: Batch chunks materialized pages into screen-sized groups of columns
// ABOUTME: ColumnCount derives the group size from the widest line in the document

package layout

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mauromedda/pagecols/pkg/tui/width"
)

// Batch yields consecutive groups of n pages. The last group may be
// shorter; an empty page slice yields nothing.
func Batch(pages []Page, n int) (iter.Seq[[]Page], error) {
	if n < 1 {
		return nil, fmt.Errorf("batching %d pages: %w", len(pages), ErrInvalidColumns)
	}
	return slices.Chunk(pages, n), nil
}

// ColumnCount returns how many columns of the document's widest line fit
// in termWidth, never less than 1. The measurement is global so no batch
// can overlap columns, even when its own lines are narrow.
func ColumnCount(lines []string, termWidth int) int {
	widest := MaxLineWidth(lines)
	if widest == 0 {
		return 1
	}
	return max(1, termWidth/widest)
}

// MaxLineWidth returns the width of the widest line, or 0 for an empty
// document. Lines are measured as text: tabs and escape bytes count one
// cell each, wide runes two.
func MaxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, width.RawWidth(line))
	}
	return widest
}
