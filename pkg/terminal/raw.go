// ABOUTME: Derives the raw-mode attribute set from a baseline termios snapshot.
// ABOUTME: Pure function so the flag set and read-control parameters are unit-testable.

//go:build unix

package terminal

import "golang.org/x/sys/unix"

// rawAttributes returns a copy of baseline with raw-mode attributes
// applied: no echo, no canonical line buffering, no signal bytes, no
// literal-next processing, no software flow control, no CR-to-NL
// input translation, no break-to-SIGINT, no parity checking, no
// high-bit stripping, no output post-processing, and 8-bit
// characters. VMIN=0 with VTIME=1 makes every read return after at
// most a tenth of a second even when no byte arrives.
func rawAttributes(baseline *unix.Termios) unix.Termios {
	raw := *baseline
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	return raw
}
