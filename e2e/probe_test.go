// ABOUTME: End-to-end test of the raw-mode session and echo loop over a real pty pair.
// ABOUTME: Types into the master side and asserts diagnostic lines and attribute restoration.

//go:build unix

package e2e

import (
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/keyprobe/keyprobe/internal/probe"
	"github.com/keyprobe/keyprobe/pkg/terminal"
)

func TestProbeOverPty(t *testing.T) {
	if testing.Short() {
		t.Skip("e2e tests skipped in short mode")
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	before := ttyAttrs(t, tty)

	pt := terminal.NewFileTerminal(tty, tty)
	if err := pt.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() unexpected error: %v", err)
	}
	defer pt.ExitRawMode()

	// Collect everything the loop writes to the tty.
	var mu sync.Mutex
	var output strings.Builder
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				mu.Lock()
				output.Write(buf[:n])
				mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	runDone := make(chan error, 1)
	go func() {
		runDone <- probe.Run(pt)
	}()

	// A printable byte, a control byte, then the quit byte.
	if _, err := ptmx.WriteString("A\x03q"); err != nil {
		t.Fatalf("writing to pty master: %v", err)
	}

	select {
	case err := <-runDone:
		if err != nil {
			t.Fatalf("probe.Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("probe.Run() did not stop on the quit byte")
	}

	want := "65 ('A')\r\n3\r\n113 ('q')\r\n"
	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		got := output.String()
		mu.Unlock()
		if got == want {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("output = %q, want %q", got, want)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if err := pt.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() unexpected error: %v", err)
	}
	if after := ttyAttrs(t, tty); after != before {
		t.Error("tty attributes were not restored to the baseline")
	}
}

func ttyAttrs(t *testing.T, f *os.File) unix.Termios {
	t.Helper()

	attrs, err := unix.IoctlGetTermios(int(f.Fd()), ttyGetRequest)
	if err != nil {
		t.Fatalf("IoctlGetTermios: %v", err)
	}
	return *attrs
}
