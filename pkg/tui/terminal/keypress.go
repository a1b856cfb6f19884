// ABOUTME: ReadKey blocks for one keypress with raw mode scoped to the read
// ABOUTME: Clear wipes the visible screen and homes the cursor before a frame

package terminal

import (
	"fmt"
	"io"

	"github.com/mauromedda/pagecols/pkg/tui/key"
)

// clearScreen homes the cursor then erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// readBufSize fits the longest escape sequence a single key produces.
const readBufSize = 32

// ReadKey switches t to raw mode, blocks until one key arrives, and
// restores the previous mode on every return path. End of input is
// reported as io.EOF.
func ReadKey(t Terminal) (k key.Key, err error) {
	if err := t.EnterRawMode(); err != nil {
		return key.Key{}, fmt.Errorf("reading key: %w", err)
	}
	defer func() {
		if rerr := t.ExitRawMode(); rerr != nil && err == nil {
			err = fmt.Errorf("reading key: %w", rerr)
		}
	}()

	buf := make([]byte, readBufSize)
	n, err := t.Read(buf)
	if n > 0 {
		return key.ParseKey(string(buf[:n])), nil
	}
	if err == nil || err == io.EOF {
		return key.Key{}, io.EOF
	}
	return key.Key{}, fmt.Errorf("reading key: %w", err)
}

// Clear erases the screen.
func Clear(w io.Writer) error {
	if _, err := io.WriteString(w, clearScreen); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}
