// ABOUTME: Key type and ParseKey for decoding one raw terminal read into a keypress
// ABOUTME: The pager only tells quit keys from advance keys, so escape sequences stay opaque

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key is one decoded keypress.
type Key struct {
	Type KeyType
	Rune rune // set for KeyRune
	Alt  bool
}

// KeyType enumerates the keys the pager distinguishes.
type KeyType int

const (
	KeyRune     KeyType = iota // Printable character
	KeyEnter                   // Enter / Return
	KeyEscape                  // Bare Escape
	KeySequence                // Any other escape sequence (arrows, paging, F-keys)
	KeyCtrlC                   // Ctrl+C
	KeyCtrlD                   // Ctrl+D
	KeyUnknown                 // Unmapped control byte or invalid input
)

// ParseKey decodes the bytes of a single terminal read. Escape
// sequences arrive in one read, so data is treated as one key.
func ParseKey(data string) Key {
	switch {
	case len(data) == 0:
		return Key{Type: KeyUnknown}
	case len(data) == 1:
		return parseByte(data[0])
	case data[0] == 0x1b:
		return parseEscape(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

func parseByte(b byte) Key {
	switch {
	case b == '\r' || b == '\n':
		return Key{Type: KeyEnter}
	case b == 0x03:
		return Key{Type: KeyCtrlC}
	case b == 0x04:
		return Key{Type: KeyCtrlD}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	return Key{Type: KeyUnknown}
}

func parseEscape(data string) Key {
	// Alt+x arrives as ESC followed by the printable byte.
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e && data[1] != '[' && data[1] != 'O' {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeySequence}
}

// IsQuit reports whether the key asks to leave the pager: q, Ctrl+C or
// Ctrl+D.
func (k Key) IsQuit() bool {
	switch k.Type {
	case KeyCtrlC, KeyCtrlD:
		return true
	case KeyRune:
		return !k.Alt && (k.Rune == 'q' || k.Rune == 'Q')
	}
	return false
}

var keyTypeNames = map[KeyType]string{
	KeyEnter:    "Enter",
	KeyEscape:   "Escape",
	KeySequence: "Sequence",
	KeyCtrlC:    "Ctrl+C",
	KeyCtrlD:    "Ctrl+D",
}

// String returns a readable name for debug logging.
func (k Key) String() string {
	if k.Type == KeyRune {
		if k.Alt {
			return fmt.Sprintf("Alt+%c", k.Rune)
		}
		return string(k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
