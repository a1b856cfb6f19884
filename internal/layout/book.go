// ABOUTME: Book runs the full pipeline for one document and one terminal geometry
// ABOUTME: Pages are materialized up front; frames are rendered on demand per batch

package layout

import (
	"fmt"
	"slices"
)

// Geometry is the drawable area a Book is laid out for.
type Geometry struct {
	Width  int
	Height int
}

// Book is a paginated document: its pages grouped into batches of
// side-by-side columns, ready to be rendered one frame at a time.
type Book struct {
	pages   []Page
	batches [][]Page
	columns int
	width   int
}

// Paginate sectionizes lines, packs the sections into pages of g.Height
// lines and groups the pages into batches of as many columns as fit
// g.Width.
func Paginate(lines []string, g Geometry) (*Book, error) {
	if g.Width < 1 {
		return nil, fmt.Errorf("paginating for width %d: %w", g.Width, ErrInvalidWidth)
	}

	pageSeq, err := Pack(Sectionize(lines), g.Height)
	if err != nil {
		return nil, fmt.Errorf("paginating: %w", err)
	}
	pages := slices.Collect(pageSeq)

	columns := ColumnCount(lines, g.Width)
	batchSeq, err := Batch(pages, columns)
	if err != nil {
		return nil, fmt.Errorf("paginating: %w", err)
	}

	return &Book{
		pages:   pages,
		batches: slices.Collect(batchSeq),
		columns: columns,
		width:   g.Width,
	}, nil
}

// Len returns the number of frames (batches) in the book.
func (b *Book) Len() int { return len(b.batches) }

// PageCount returns the number of pages before batching.
func (b *Book) PageCount() int { return len(b.pages) }

// Width returns the frame width the book was laid out for.
func (b *Book) Width() int { return b.width }

// Columns returns the batch size chosen for the document.
func (b *Book) Columns() int { return b.columns }

// Batch returns the pages of frame i.
func (b *Book) Batch(i int) []Page { return b.batches[i] }

// PageRange returns the 1-based first and last page numbers shown in frame i.
func (b *Book) PageRange(i int) (first, last int) {
	first = i*b.columns + 1
	return first, first + len(b.batches[i]) - 1
}

// Frame renders frame i.
func (b *Book) Frame(i int) (string, error) {
	if i < 0 || i >= len(b.batches) {
		return "", fmt.Errorf("frame %d out of range [0,%d)", i, len(b.batches))
	}
	return Render(b.batches[i], b.width)
}
