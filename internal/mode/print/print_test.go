// ABOUTME: Tests for headless print mode output
// ABOUTME: Checks frame order, separators, and the plain status line

package print

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mauromedda/pagecols/internal/layout"
)

// compile-time check: print mode accepts a laid-out Book.
var _ Book = (*layout.Book)(nil)

func paginate(t *testing.T, lines []string, g layout.Geometry) *layout.Book {
	t.Helper()
	book, err := layout.Paginate(lines, g)
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func TestRun(t *testing.T) {
	t.Parallel()

	book := paginate(t, []string{"a", "b", "", "c", "", "", "d", "e", "f"}, layout.Geometry{Width: 1, Height: 3})

	var buf bytes.Buffer
	if err := Run(&buf, book, Config{}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := "a\nb\n\n" + FrameSeparator + "c\n\n" + FrameSeparator + "d\ne\nf\n\n"
	if got := buf.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func TestRun_Columns(t *testing.T) {
	t.Parallel()

	book := paginate(t, []string{"x", "y", "", "1", "2", "3"}, layout.Geometry{Width: 10, Height: 3})

	var buf bytes.Buffer
	if err := Run(&buf, book, Config{}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// Both pages fit side by side; each column gets half of the width.
	want := "x    1\ny    2\n     3\n     \n"
	if got := buf.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

func TestRun_Status(t *testing.T) {
	t.Parallel()

	book := paginate(t, []string{"one"}, layout.Geometry{Width: 80, Height: 24})

	var buf bytes.Buffer
	if err := Run(&buf, book, Config{Path: "/x/readme.txt", Status: true}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	want := "one\n\n readme.txt  frame 1/1  page 1 of 1\n"
	if got := buf.String(); got != want {
		t.Errorf("Run() wrote %q, want %q", got, want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRun_WriteError(t *testing.T) {
	t.Parallel()

	book := paginate(t, []string{"one"}, layout.Geometry{Width: 80, Height: 24})
	if err := Run(failWriter{}, book, Config{}); err == nil {
		t.Fatal("Run() error = nil, want write error")
	}
}

// brokenBook renders its first frame and fails on the second.
type brokenBook struct{}

var errRender = errors.New("render failed")

func (brokenBook) Len() int                   { return 2 }
func (brokenBook) PageCount() int             { return 2 }
func (brokenBook) PageRange(i int) (int, int) { return i + 1, i + 1 }

func (brokenBook) Frame(i int) (string, error) {
	if i == 1 {
		return "", errRender
	}
	return "first", nil
}

func TestRun_RenderErrorStopsOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Run(&buf, brokenBook{}, Config{})
	if !errors.Is(err, errRender) {
		t.Fatalf("Run() error = %v, want %v", err, errRender)
	}
	if buf.Len() != 0 {
		t.Errorf("Run() wrote %q before failing, want nothing", buf.String())
	}
}
