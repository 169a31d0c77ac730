// ABOUTME: Error taxonomy for the terminal package: config ioctl failures and sentinels.
// ABOUTME: ConfigError carries the failing operation name so diagnostics can report it.

package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrRawModeActive is returned by EnterRawMode when a raw session
	// is already active. The baseline snapshot is captured exactly
	// once per session and must never be overwritten.
	ErrRawModeActive = errors.New("raw mode already active")

	// ErrNotTerminal is returned when the input file is not a
	// terminal device.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// ConfigError reports a failed terminal-attribute query or apply.
// Op names the failing operation, "tcgetattr" or "tcsetattr".
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
