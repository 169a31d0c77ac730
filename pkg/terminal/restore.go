// ABOUTME: RestoreOnPanic recovers from panics, restores the terminal, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred at the top of the function that
// owns the raw-mode session. On panic it exits raw mode via the
// provided Terminal, prints the panic value and stack trace, then
// exits with code 1, so the terminal is never left in raw mode even
// on the panic path.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = t.ExitRawMode()

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
