// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays a scripted queue of read results and captures written output.

package terminal

import (
	"bytes"
	"io"
	"sync"
)

// readStep is one scripted ReadByte result.
type readStep struct {
	b   byte
	ok  bool
	err error
}

// VirtualTerminal is a fake Terminal for unit tests. Reads replay a
// scripted queue; output is captured in a buffer. Raw-mode calls are
// counted and enforce the same lifecycle contract as the real
// terminal.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	steps      []readStep
	rawMode    bool
	enterCount int
	exitCount  int
	enterErr   error
	exitErr    error
	writeErr   error
}

// NewVirtualTerminal returns an empty VirtualTerminal. Script reads
// with QueueByte, QueueNoData, and QueueReadError before use.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{}
}

// EnterRawMode records a raw-mode entry, honoring the double-entry
// guard and any injected failure.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.enterErr != nil {
		return v.enterErr
	}
	if v.rawMode {
		return ErrRawModeActive
	}
	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit. Like the real terminal it is
// a no-op when no session is active.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.rawMode {
		return nil
	}
	if v.exitErr != nil {
		return v.exitErr
	}
	v.rawMode = false
	v.exitCount++
	return nil
}

// ReadByte pops the next scripted result. An exhausted script reads
// as io.EOF so a loop under test can never spin forever.
func (v *VirtualTerminal) ReadByte() (byte, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.steps) == 0 {
		return 0, false, io.EOF
	}
	step := v.steps[0]
	v.steps = v.steps[1:]
	return step.b, step.ok, step.err
}

// Write appends data to the capture buffer, or fails with the
// injected write error.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	return v.buf.Write(p)
}

// --- Script helpers (not part of Terminal) ---

// QueueByte scripts a successful read of b.
func (v *VirtualTerminal) QueueByte(b byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.steps = append(v.steps, readStep{b: b, ok: true})
}

// QueueBytes scripts successful reads for each byte of s in order.
func (v *VirtualTerminal) QueueBytes(s string) {
	for i := 0; i < len(s); i++ {
		v.QueueByte(s[i])
	}
}

// QueueNoData scripts n timed-out reads with no data.
func (v *VirtualTerminal) QueueNoData(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := 0; i < n; i++ {
		v.steps = append(v.steps, readStep{})
	}
}

// QueueReadError scripts a fatal read failure.
func (v *VirtualTerminal) QueueReadError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.steps = append(v.steps, readStep{err: err})
}

// SetEnterError makes EnterRawMode fail with err.
func (v *VirtualTerminal) SetEnterError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// SetExitError makes ExitRawMode fail with err while a session is
// active.
func (v *VirtualTerminal) SetExitError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// SetWriteError makes Write fail with err.
func (v *VirtualTerminal) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// IsRawMode reports whether a raw session is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode succeeded.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode restored a session.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// Remaining returns how many scripted reads are left unconsumed.
func (v *VirtualTerminal) Remaining() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.steps)
}
