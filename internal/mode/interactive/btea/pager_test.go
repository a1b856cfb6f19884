// ABOUTME: Tests for PagerModel key handling and rendering
// ABOUTME: Drives Update directly with tea.KeyMsg values

package btea

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/pagecols/internal/layout"
)

// Compile-time check: PagerModel must satisfy tea.Model.
var _ tea.Model = PagerModel{}

func testBook(t *testing.T) *layout.Book {
	t.Helper()
	book, err := layout.Paginate([]string{"first", "", "second", "", "third"}, layout.Geometry{Width: 6, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	return book
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestPagerModel_Init(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(testBook(t), "doc", false)
	if cmd := m.Init(); cmd != nil {
		t.Error("Init() returned non-nil cmd")
	}
	if got := m.View(); got != "first\n" {
		t.Errorf("View() = %q, want first frame", got)
	}
}

func TestPagerModel_AdvancesThenQuits(t *testing.T) {
	t.Parallel()

	var model tea.Model = NewPagerModel(testBook(t), "doc", false)
	wantViews := []string{"second\n", "third\n"}

	for i, want := range wantViews {
		var cmd tea.Cmd
		model, cmd = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		if isQuit(cmd) {
			t.Fatalf("step %d: quit before the last frame", i)
		}
		if got := model.View(); got != want {
			t.Errorf("step %d: View() = %q, want %q", i, got, want)
		}
	}

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !isQuit(cmd) {
		t.Fatal("key after the last frame did not quit")
	}
	if got := model.View(); got != "" {
		t.Errorf("View() after quit = %q, want empty", got)
	}
}

func TestPagerModel_QuitKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: runes("q")},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
		{name: "ctrl+d", msg: tea.KeyMsg{Type: tea.KeyCtrlD}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewPagerModel(testBook(t), "doc", false)
			result, cmd := m.Update(tt.msg)
			if !isQuit(cmd) {
				t.Errorf("%s did not quit", tt.name)
			}
			if result.(PagerModel).Index() != 0 {
				t.Errorf("%s advanced the frame", tt.name)
			}
		})
	}
}

func TestPagerModel_IgnoresOtherMessages(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(testBook(t), "doc", false)
	result, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})
	if cmd != nil {
		t.Error("WindowSizeMsg returned a command")
	}
	if result.(PagerModel).Index() != 0 {
		t.Error("WindowSizeMsg advanced the frame")
	}
}

func TestPagerModel_StatusLine(t *testing.T) {
	t.Parallel()

	m := NewPagerModel(testBook(t), "/srv/doc.txt", true)
	view := m.View()
	if !strings.HasPrefix(view, "first\n\n") {
		t.Errorf("View() = %q, want frame first", view)
	}
	if !strings.Contains(view, "frame 1/3") {
		t.Errorf("View() = %q, want status line", view)
	}
}

func TestRun_ScriptedInput(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("  q")
	var out bytes.Buffer

	err := Run(context.Background(), Deps{Book: testBook(t), Path: "doc", In: in, Out: &out})
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if out.Len() == 0 {
		t.Error("Run() wrote nothing to the output")
	}
}
