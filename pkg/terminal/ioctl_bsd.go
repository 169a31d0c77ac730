// ABOUTME: Termios ioctl request numbers for BSD-derived platforms.
// ABOUTME: The write request is the flush variant: drain output, discard unread input.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
