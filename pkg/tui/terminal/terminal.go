// ABOUTME: Defines the Terminal interface the pager draws on and reads keys from
// ABOUTME: Implemented by ProcessTerminal (real TTY) and VirtualTerminal (tests)

package terminal

// Terminal abstracts the OS terminal: raw mode toggling, a one-time size
// query, output, and raw key input.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
}
