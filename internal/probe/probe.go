// ABOUTME: Byte classification and the read/echo loop that drives keyprobe.
// ABOUTME: Emits one diagnostic line per byte and stops on 'q' or a fatal read error.

package probe

import (
	"fmt"
	"io"

	"github.com/keyprobe/keyprobe/pkg/terminal"
)

// QuitByte stops the loop with normal termination once its line has
// been emitted.
const QuitByte byte = 'q'

// FormatByte renders the diagnostic line for one input byte: control
// bytes get only their decimal value, printable bytes add the
// character itself in quotes. Lines end in an explicit \r\n because
// output post-processing is off in raw mode.
func FormatByte(b byte) string {
	if b < 0x20 || b == 0x7f {
		return fmt.Sprintf("%d\r\n", b)
	}
	return fmt.Sprintf("%d ('%c')\r\n", b, b)
}

// Run consumes bytes from the terminal until QuitByte arrives or a
// read fails. Timed-out reads with no data iterate silently. The
// line for QuitByte is emitted before the loop stops.
func Run(t terminal.Terminal) error {
	for {
		b, ok, err := t.ReadByte()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if !ok {
			continue
		}
		if _, err := io.WriteString(t, FormatByte(b)); err != nil {
			return fmt.Errorf("writing diagnostic: %w", err)
		}
		if b == QuitByte {
			return nil
		}
	}
}
