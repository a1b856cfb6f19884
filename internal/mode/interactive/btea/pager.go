// ABOUTME: PagerModel is a Bubble Tea model stepping through the frames of a Book
// ABOUTME: Any key advances; q, ctrl+c and ctrl+d quit; the key after the last frame exits

package btea

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pagecols/internal/layout"
	"github.com/mauromedda/pagecols/internal/log"
	"github.com/mauromedda/pagecols/internal/statusline"
)

// PagerModel shows one frame at a time.
type PagerModel struct {
	book     *layout.Book
	path     string
	status   bool
	index    int
	frame    string
	err      error
	quitting bool
}

// NewPagerModel returns a model positioned on the first frame.
func NewPagerModel(book *layout.Book, path string, status bool) PagerModel {
	m := PagerModel{book: book, path: path, status: status}
	m.frame, m.err = book.Frame(0)
	return m
}

// Init returns nil; the first frame is already rendered.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update advances on key presses.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "Q", "ctrl+c", "ctrl+d":
		log.Debug("tea: quit at frame %d", m.index+1)
		m.quitting = true
		return m, tea.Quit
	}

	if m.index+1 >= m.book.Len() {
		m.quitting = true
		return m, tea.Quit
	}
	m.index++
	m.frame, m.err = m.book.Frame(m.index)
	if m.err != nil {
		m.err = fmt.Errorf("rendering frame %d: %w", m.index+1, m.err)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View returns the current frame and, when enabled, the status line.
func (m PagerModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.status {
		return m.frame
	}
	return m.frame + "\n" + statusline.Render(statusline.FromBook(m.path, m.book, m.index), m.book.Width())
}

// Index returns the 0-based frame being shown.
func (m PagerModel) Index() int { return m.index }

// Err returns the render error that stopped the pager, if any.
func (m PagerModel) Err() error { return m.err }
