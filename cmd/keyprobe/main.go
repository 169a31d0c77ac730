// ABOUTME: CLI entry point for keyprobe with guaranteed terminal restoration
// ABOUTME: Enters raw mode, runs the echo loop, and maps fatal errors to exit code 1

package main

import (
	"fmt"
	"os"

	"github.com/keyprobe/keyprobe/internal/probe"
	"github.com/keyprobe/keyprobe/pkg/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "keyprobe: %v\n", err)
		os.Exit(1)
	}
}

// run owns the raw-mode session. The restore hooks are deferred
// before the first read of the baseline, so every exit path puts the
// terminal back: normal stop, fatal error, and panic. ExitRawMode is
// idempotent, which lets the deferred restore compose with the
// explicit one whose error we report.
func run() error {
	t := terminal.NewProcessTerminal()

	// Registered before the first attribute mutation: tcsetattr can
	// leave the device partially changed even when it fails, and
	// ExitRawMode is a no-op if no baseline was captured.
	defer terminal.RestoreOnPanic(t)
	defer t.ExitRawMode()

	if err := t.EnterRawMode(); err != nil {
		return err
	}

	if err := probe.Run(t); err != nil {
		return err
	}
	return t.ExitRawMode()
}
