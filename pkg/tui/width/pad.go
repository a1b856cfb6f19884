// ABOUTME: Cell-based padding and truncation for column and footer layout
// ABOUTME: PadRight never truncates; Truncate cuts at a cluster boundary with an ellipsis

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// PadRight left-justifies s in a field of n cells by appending spaces.
// Strings already n cells or wider are returned unchanged.
func PadRight(s string, n int) string {
	gap := n - VisibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate shortens s to at most n cells, replacing the tail with an
// ellipsis when anything is cut. ANSI sequences are dropped from
// truncated output.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if VisibleWidth(s) <= n {
		return s
	}
	if n == 1 {
		return ellipsis
	}

	plain := StripANSI(s)
	var b strings.Builder
	col := 0
	state := -1
	for plain != "" {
		var cluster string
		cluster, plain, _, state = uniseg.FirstGraphemeClusterInString(plain, state)
		cw := graphemeWidth(cluster)
		if col+cw > n-1 {
			break
		}
		b.WriteString(cluster)
		col += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}
