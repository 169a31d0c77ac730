// ABOUTME: Termios read request number for BSD-derived platforms.
// ABOUTME: Test-only mirror of the request used by pkg/terminal.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package e2e

import "golang.org/x/sys/unix"

const ttyGetRequest = unix.TIOCGETA
