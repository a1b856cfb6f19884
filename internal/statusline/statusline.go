// ABOUTME: One-row footer showing the document name and frame/page position
// ABOUTME: Styled with lipgloss, truncated and padded to exactly the frame width

package statusline

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/pagecols/pkg/tui/width"
)

var style = lipgloss.NewStyle().Reverse(true)

// Info is the position shown in the footer. Frame, FirstPage and
// LastPage are 1-based.
type Info struct {
	Name      string
	Frame     int
	Frames    int
	FirstPage int
	LastPage  int
	Pages     int
}

// Position locates frames within a paginated document; *layout.Book
// satisfies it.
type Position interface {
	Len() int
	PageCount() int
	PageRange(i int) (first, last int)
}

// FromBook describes frame i (0-based) of b for the document at path.
func FromBook(path string, b Position, i int) Info {
	first, last := b.PageRange(i)
	return Info{
		Name:      filepath.Base(path),
		Frame:     i + 1,
		Frames:    b.Len(),
		FirstPage: first,
		LastPage:  last,
		Pages:     b.PageCount(),
	}
}

// Text returns the unstyled footer text.
func (in Info) Text() string {
	pages := fmt.Sprintf("page %d of %d", in.FirstPage, in.Pages)
	if in.LastPage > in.FirstPage {
		pages = fmt.Sprintf("pages %d-%d of %d", in.FirstPage, in.LastPage, in.Pages)
	}
	return fmt.Sprintf(" %s  frame %d/%d  %s", in.Name, in.Frame, in.Frames, pages)
}

// Render returns the styled footer exactly cols cells wide.
func Render(in Info, cols int) string {
	if cols <= 0 {
		return ""
	}
	text := width.PadRight(width.Truncate(in.Text(), cols), cols)
	return style.Render(text)
}
