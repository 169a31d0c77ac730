// ABOUTME: ProcessTerminal implements Terminal over a real TTY using termios ioctls.
// ABOUTME: Owns the baseline attribute snapshot and the raw session lifecycle.

//go:build unix

package terminal

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/keyprobe/keyprobe/internal/log"
)

// ProcessTerminal is a real terminal backed by a pair of open TTY
// files, normally the process's stdin and stdout. A nil baseline
// means no raw session is active.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	inFd     int
	baseline *unix.Termios
}

// NewProcessTerminal returns a ProcessTerminal over os.Stdin and
// os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal over the given files.
// Used by tests to drive a pty instead of the process's own TTY.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{
		in:   in,
		out:  out,
		inFd: int(in.Fd()),
	}
}

// EnterRawMode snapshots the current attributes and applies the raw
// set derived from them. The snapshot is recorded before the apply,
// so a restore the caller has already deferred covers every exit
// path from here on.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.baseline != nil {
		return ErrRawModeActive
	}
	if !term.IsTerminal(t.inFd) {
		return ErrNotTerminal
	}

	baseline, err := unix.IoctlGetTermios(t.inFd, ioctlReadTermios)
	if err != nil {
		return &ConfigError{Op: "tcgetattr", Err: err}
	}
	t.baseline = baseline

	raw := rawAttributes(baseline)
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, &raw); err != nil {
		// The baseline stays recorded: tcsetattr may apply some
		// attributes even when it fails, and the caller's deferred
		// ExitRawMode puts them back.
		return &ConfigError{Op: "tcsetattr", Err: err}
	}
	log.Debug("raw mode on (VMIN=0 VTIME=1)")
	return nil
}

// ExitRawMode applies the baseline attributes back with the same
// flush semantics and ends the session. A no-op when no session is
// active.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.baseline == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.inFd, ioctlWriteTermios, t.baseline); err != nil {
		return &ConfigError{Op: "tcsetattr", Err: err}
	}
	t.baseline = nil
	log.Debug("raw mode off")
	return nil
}

// ReadByte reads one byte honoring the VMIN/VTIME parameters applied
// by EnterRawMode, so it returns after at most a tenth of a second.
// A zero-byte read means the timeout elapsed with no data. EAGAIN
// and EINTR are the transient retry conditions and are reported as
// no-data rather than failures.
func (t *ProcessTerminal) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Write sends bytes to the terminal output.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}
