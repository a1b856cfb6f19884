// ABOUTME: Terminal restoration on panic and on termination signals
// ABOUTME: Both paths show the cursor and leave raw mode before the process dies

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
)

const showCursor = "\x1b[?25h"

// RestoreOnPanic should be deferred at the top of main. On panic it
// leaves raw mode, prints the panic value and stack, and exits 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_, _ = t.Write([]byte(showCursor))
	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RestoreOnSignal leaves raw mode when one of sigs arrives, then calls
// onSignal (which normally exits). The returned stop function
// unregisters the handler.
func RestoreOnSignal(t Terminal, onSignal func(os.Signal), sigs ...os.Signal) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigCh, sigs...)

	go func() {
		select {
		case sig := <-sigCh:
			_, _ = t.Write([]byte(showCursor))
			_ = t.ExitRawMode()
			if onSignal != nil {
				onSignal(sig)
			}
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
