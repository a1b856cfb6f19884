// ABOUTME: Core types and sentinel errors for the section/page/batch pipeline
// ABOUTME: Lines flow one way: Sectionize -> Pack -> Batch -> Render

package layout

import "errors"

// Section is a maximal run of non-blank lines. It never contains "".
type Section []string

// Page is one or more whole sections, each followed by one blank
// separator line. A page only exceeds its height when a single section
// is taller than the height on its own.
type Page []string

var (
	// ErrInvalidHeight is returned when a page height below 1 is requested.
	ErrInvalidHeight = errors.New("page height must be at least 1")
	// ErrInvalidWidth is returned when a frame width below 1 is requested.
	ErrInvalidWidth = errors.New("frame width must be at least 1")
	// ErrInvalidColumns is returned when a batch size below 1 is requested.
	ErrInvalidColumns = errors.New("column count must be at least 1")
	// ErrNoColumns is returned when Render is given an empty batch.
	ErrNoColumns = errors.New("no columns to render")
)
