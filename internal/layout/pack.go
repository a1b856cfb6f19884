// ABOUTME: Pack repacks sections into height-bounded pages without splitting any section
// ABOUTME: Always emits a trailing page, even when it is empty

package layout

import (
	"fmt"
	"iter"
)

// Pack accumulates sections into pages of at most height lines, counting
// one separator line per section. A section taller than height is kept
// whole on its own page. The final page is always emitted, so an empty
// section stream still yields one empty page.
func Pack(sections iter.Seq[Section], height int) (iter.Seq[Page], error) {
	if height < 1 {
		return nil, fmt.Errorf("packing pages of height %d: %w", height, ErrInvalidHeight)
	}

	return func(yield func(Page) bool) {
		curHeight := 0
		curWindow := Page{}
		for section := range sections {
			curHeight += len(section) + 1
			if curHeight > height && len(curWindow) > 0 {
				if !yield(curWindow) {
					return
				}
				curWindow = Page{}
				curHeight = len(section) + 1
			}
			curWindow = append(curWindow, section...)
			curWindow = append(curWindow, "")
		}
		yield(curWindow)
	}, nil
}
