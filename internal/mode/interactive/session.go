// ABOUTME: Raw-terminal session: clear, print one frame, block for one key, repeat
// ABOUTME: Ends after the key that follows the last frame, on a quit key, or at end of input

package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/pagecols/internal/layout"
	"github.com/mauromedda/pagecols/internal/log"
	"github.com/mauromedda/pagecols/internal/statusline"
	"github.com/mauromedda/pagecols/pkg/tui/terminal"
)

// Deps bundles what a session draws and where.
type Deps struct {
	Terminal terminal.Terminal
	Book     *layout.Book
	Path     string // shown in the status line
	Status   bool   // draw the status line under each frame
}

// Run steps through every frame of the book. Raw mode is held only
// while a key is being read.
func Run(ctx context.Context, d Deps) error {
	for i := range d.Book.Len() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := draw(d, i); err != nil {
			return fmt.Errorf("drawing frame %d: %w", i+1, err)
		}

		k, err := terminal.ReadKey(d.Terminal)
		if errors.Is(err, io.EOF) {
			log.Debug("input closed at frame %d", i+1)
			return nil
		}
		if err != nil {
			return fmt.Errorf("waiting at frame %d: %w", i+1, err)
		}
		log.Debug("frame %d/%d: key %s", i+1, d.Book.Len(), k)
		if k.IsQuit() {
			return nil
		}
	}
	return nil
}

func draw(d Deps, i int) error {
	frame, err := d.Book.Frame(i)
	if err != nil {
		return err
	}
	if err := terminal.Clear(d.Terminal); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(frame)
	b.WriteByte('\n')
	if d.Status {
		b.WriteString(statusline.Render(statusline.FromBook(d.Path, d.Book, i), d.Book.Width()))
	}
	if _, err := io.WriteString(d.Terminal, b.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
