// ABOUTME: Render laminates a batch of pages into side-by-side columns
// ABOUTME: Every column but the last is left-justified to an equal slice of the width

package layout

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pagecols/pkg/tui/width"
)

// Render joins the pages of one batch row by row. Each column gets
// fullWidth/len(columns) cells; shorter columns contribute empty cells
// once exhausted. Cells are measured with width.RawWidth, the same
// measure ColumnCount uses. Lines wider than their column overflow rather than
// being cut. The last column is never padded, so a single column renders
// as its lines joined unchanged.
func Render(columns []Page, fullWidth int) (string, error) {
	if fullWidth < 1 {
		return "", fmt.Errorf("rendering frame of width %d: %w", fullWidth, ErrInvalidWidth)
	}
	if len(columns) == 0 {
		return "", ErrNoColumns
	}

	colWidth := fullWidth / len(columns)
	rows := 0
	for _, col := range columns {
		rows = max(rows, len(col))
	}

	last := len(columns) - 1
	out := make([]string, rows)
	var b strings.Builder
	for r := range rows {
		b.Reset()
		for _, col := range columns[:last] {
			b.WriteString(width.PadRawRight(cell(col, r), colWidth))
		}
		b.WriteString(cell(columns[last], r))
		out[r] = b.String()
	}
	return strings.Join(out, "\n"), nil
}

// cell returns line r of col, or "" once the column has run out.
func cell(col Page, r int) string {
	if r < len(col) {
		return col[r]
	}
	return ""
}
