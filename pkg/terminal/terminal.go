// ABOUTME: Defines the Terminal interface for raw mode, bounded byte reads, and output.
// ABOUTME: Abstracts terminal operations so implementations can target a real TTY or a scripted fake.

package terminal

// Terminal abstracts the byte-level terminal operations keyprobe
// needs: raw mode transitions, bounded single-byte reads, and output
// writing.
type Terminal interface {
	// EnterRawMode switches the terminal to raw mode, saving the
	// previous attributes. A second call without an intervening
	// ExitRawMode fails with ErrRawModeActive rather than
	// overwriting the saved baseline.
	EnterRawMode() error

	// ExitRawMode applies the saved attributes back. Calling it with
	// no active raw session is a no-op, so a deferred call composes
	// with an explicit one.
	ExitRawMode() error

	// ReadByte attempts to read a single byte, blocking at most the
	// read timeout configured by raw mode (about 100ms). It returns
	// (b, true, nil) when a byte arrived, (0, false, nil) when the
	// timeout elapsed with nothing available, and (0, false, err)
	// only for a genuine read failure.
	ReadByte() (b byte, ok bool, err error)

	// Write sends bytes to the terminal output. No newline
	// translation happens in raw mode, so callers emit \r\n
	// themselves.
	Write(p []byte) (n int, err error)
}
