//go:build unix

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// drainBufSize is large enough to swallow a full OS key-repeat backlog
// (arrow keys produce 3-byte sequences) in one read.
const drainBufSize = 4096

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	buf []byte
}

// NewBackend returns the platform backend for stdin/stdout.
// No descriptor is touched until Attach.
func NewBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  -1,
		outFd: int(os.Stdout.Fd()),
		buf:   make([]byte, drainBufSize),
	}
}

func (b *unixBackend) Attach() error {
	fd := int(b.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	b.inFd = fd
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Restore() {
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
		b.oldTerm = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	ws, err := unix.IoctlGetWinsize(b.outFd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

func (b *unixBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// ReadInput polls for at most timeout, then drains the input buffer with a
// single read so queued key repeats never straddle ticks.
func (b *unixBackend) ReadInput(timeout time.Duration) ([]byte, error) {
	if b.inFd < 0 {
		return nil, fmt.Errorf("backend not attached")
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}

		fds := []unix.PollFd{
			{Fd: int32(b.inFd), Events: unix.POLLIN},
		}

		n, err := unix.Poll(fds, int(remaining.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return nil, err
		}

		if n == 0 {
			return nil, nil // Timeout, nothing buffered
		}

		rn, err := unix.Read(b.inFd, b.buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return nil, err
		}

		if rn == 0 {
			// EOF
			return nil, nil
		}

		ret := make([]byte, rn)
		copy(ret, b.buf[:rn])
		return ret, nil
	}
}
