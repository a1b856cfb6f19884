// ABOUTME: Pre-sets the lipgloss dark background so no OSC color query is sent at startup
// ABOUTME: Must be imported (with _) before any package that imports bubbletea

package termfix

import "github.com/charmbracelet/lipgloss"

func init() {
	// The status line style and Bubble Tea's own init both ask lipgloss
	// for the background color. Answering up front keeps the OSC 10/11
	// query, and its reply, out of the key stream the pager reads.
	//
	// This package must NOT import bubbletea so that init order
	// guarantees this runs first.
	lipgloss.SetHasDarkBackground(true)
}
