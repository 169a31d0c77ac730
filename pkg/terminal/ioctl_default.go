// ABOUTME: Termios ioctl request numbers for platforms with TCGETS-style requests.
// ABOUTME: The write request is the flush variant: drain output, discard unread input.

//go:build aix || linux || solaris || zos

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETSF
)
