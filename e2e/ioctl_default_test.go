// ABOUTME: Termios read request number for platforms with TCGETS-style requests.
// ABOUTME: Test-only mirror of the request used by pkg/terminal.

//go:build aix || linux || solaris || zos

package e2e

import "golang.org/x/sys/unix"

const ttyGetRequest = unix.TCGETS
