// ABOUTME: Tests for the raw-terminal session loop using VirtualTerminal
// ABOUTME: Covers full runs, quit keys, end of input, status line, and cancellation

package interactive

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/pagecols/internal/layout"
	"github.com/mauromedda/pagecols/pkg/tui/terminal"
)

const clearSeq = "\x1b[H\x1b[2J"

// threeFrames lays out three one-line sections, one per frame.
func threeFrames(t *testing.T) *layout.Book {
	t.Helper()
	book, err := layout.Paginate([]string{"first", "", "second", "", "third"}, layout.Geometry{Width: 5, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if book.Len() != 3 {
		t.Fatalf("book has %d frames, want 3", book.Len())
	}
	return book
}

func TestRun_AllFrames(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(5, 2)
	vt.Feed(" ", "\r", "x")

	if err := Run(context.Background(), Deps{Terminal: vt, Book: threeFrames(t)}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := clearSeq + "first\n\n" + clearSeq + "second\n\n" + clearSeq + "third\n\n"
	if got := vt.Output(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if total, raw := vt.Reads(); total != 3 || raw != 3 {
		t.Errorf("Reads() = (%d, %d), want three raw reads", total, raw)
	}
	if vt.IsRawMode() || vt.EnterCount() != vt.ExitCount() {
		t.Errorf("raw mode left unbalanced: enters=%d exits=%d", vt.EnterCount(), vt.ExitCount())
	}
}

func TestRun_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"q", "\x03", "\x04"} {
		vt := terminal.NewVirtualTerminal(5, 2)
		vt.Feed(k, " ", " ")

		if err := Run(context.Background(), Deps{Terminal: vt, Book: threeFrames(t)}); err != nil {
			t.Fatalf("Run() with %q unexpected error: %v", k, err)
		}
		if got := strings.Count(vt.Output(), clearSeq); got != 1 {
			t.Errorf("quit key %q: drew %d frames, want 1", k, got)
		}
	}
}

func TestRun_EndOfInput(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(5, 2)
	vt.Feed(" ")

	if err := Run(context.Background(), Deps{Terminal: vt, Book: threeFrames(t)}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got := strings.Count(vt.Output(), clearSeq); got != 2 {
		t.Errorf("drew %d frames, want 2 before input ran out", got)
	}
	if vt.IsRawMode() {
		t.Error("raw mode still active after end of input")
	}
}

func TestRun_StatusLine(t *testing.T) {
	t.Parallel()

	book, err := layout.Paginate([]string{"alpha", "", "beta"}, layout.Geometry{Width: 40, Height: 10})
	if err != nil {
		t.Fatal(err)
	}
	vt := terminal.NewVirtualTerminal(40, 11)
	vt.Feed(" ")

	if err := Run(context.Background(), Deps{Terminal: vt, Book: book, Path: "dir/doc.txt", Status: true}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	out := vt.Output()
	if !strings.HasPrefix(out, clearSeq+"alpha\n\nbeta\n\n") {
		t.Errorf("frame missing from output %q", out)
	}
	if !strings.Contains(out, "doc.txt  frame 1/1  page 1 of 1") {
		t.Errorf("status line missing from output %q", out)
	}
}

func TestRun_EmptyDocument(t *testing.T) {
	t.Parallel()

	book, err := layout.Paginate(nil, layout.Geometry{Width: 80, Height: 24})
	if err != nil {
		t.Fatal(err)
	}
	vt := terminal.NewVirtualTerminal(80, 24)
	vt.Feed(" ")

	if err := Run(context.Background(), Deps{Terminal: vt, Book: book}); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if got := vt.Output(); got != clearSeq+"\n" {
		t.Errorf("output = %q, want one empty frame", got)
	}
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	vt := terminal.NewVirtualTerminal(5, 2)
	err := Run(ctx, Deps{Terminal: vt, Book: threeFrames(t)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if vt.Output() != "" {
		t.Errorf("cancelled run drew %q", vt.Output())
	}
}
