// ABOUTME: Headless print mode: writes every frame in order with no clearing or key waits
// ABOUTME: Used for --print and whenever stdin or stdout is not a terminal

package print

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mauromedda/pagecols/internal/statusline"
)

// FrameSeparator is written between consecutive frames.
const FrameSeparator = "\f\n"

// Config configures print mode output.
type Config struct {
	Path   string // shown in the status line
	Status bool   // append the status line to each frame
}

// Book is the paginated document print mode writes out.
type Book interface {
	statusline.Position
	Frame(i int) (string, error)
}

// Run writes all frames of book to w. A frame that fails to render
// aborts the run before anything buffered is flushed.
func Run(w io.Writer, book Book, cfg Config) error {
	bw := bufio.NewWriter(w)
	for i := range book.Len() {
		frame, err := book.Frame(i)
		if err != nil {
			return fmt.Errorf("rendering frame %d: %w", i+1, err)
		}
		if i > 0 {
			bw.WriteString(FrameSeparator)
		}
		bw.WriteString(frame)
		bw.WriteByte('\n')
		if cfg.Status {
			bw.WriteString(statusline.FromBook(cfg.Path, book, i).Text())
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}
