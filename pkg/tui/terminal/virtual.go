// ABOUTME: VirtualTerminal implements Terminal for tests without a real TTY
// ABOUTME: Replays queued keys, captures output, and tracks raw-mode transitions

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal. Each Read returns one queued key;
// once the queue is empty Read reports io.EOF.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	keys       []string
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int
	rawReads   int
	reads      int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{width: width, height: height}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Read pops the next queued key into p.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.reads++
	if v.rawMode {
		v.rawReads++
	}
	if len(v.keys) == 0 {
		return 0, io.EOF
	}
	n := copy(p, v.keys[0])
	v.keys = v.keys[1:]
	return n, nil
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues raw key data; each argument is returned by one Read.
func (v *VirtualTerminal) Feed(keys ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.keys = append(v.keys, keys...)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// Reads returns the total number of Read calls and how many of them
// happened while raw mode was active.
func (v *VirtualTerminal) Reads() (total, raw int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.reads, v.rawReads
}
