// ABOUTME: Entry point for the Bubble Tea pager
// ABOUTME: Runs PagerModel on the alternate screen and blocks until the last frame is dismissed

package btea

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pagecols/internal/layout"
)

// Deps provides what the Bubble Tea pager shows and where.
type Deps struct {
	Book   *layout.Book
	Path   string
	Status bool
	In     io.Reader
	Out    io.Writer
}

// Run starts the pager and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	}
	if deps.In != nil {
		opts = append(opts, tea.WithInput(deps.In))
	}
	if deps.Out != nil {
		opts = append(opts, tea.WithOutput(deps.Out))
	}

	p := tea.NewProgram(NewPagerModel(deps.Book, deps.Path, deps.Status), opts...)
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("bubble tea: %w", err)
	}
	if m, ok := final.(PagerModel); ok && m.Err() != nil {
		return m.Err()
	}
	if err != nil {
		return ctx.Err()
	}
	return nil
}
