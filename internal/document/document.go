// ABOUTME: Loads a text file as trimmed, NFC-normalized lines for pagination
// ABOUTME: Accepts LF and CRLF endings; a missing trailing newline still ends a line

package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxLineSize bounds a single line; longer lines fail the load.
const maxLineSize = 16 << 20

// Document is a loaded text file.
type Document struct {
	Path  string
	Lines []string
}

// Load reads the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading document %q: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading document %q: %w", path, err)
	}
	return &Document{Path: path, Lines: lines}, nil
}

// ReadLines splits r into lines with trailing whitespace removed and
// each line normalized to NFC so composed and decomposed text measure
// the same.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		lines = append(lines, norm.NFC.String(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return lines, nil
}
