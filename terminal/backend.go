package terminal

import "time"

// Backend abstracts platform-specific terminal operations.
// Construction performs no I/O: the descriptor is acquired by Attach,
// so non-interactive contexts (tests, redirected stdin) can still build
// the surrounding components against a synthetic source.
type Backend interface {
	// Attach acquires the descriptor and enters raw mode.
	// Called once by the runtime entry point, never by tests.
	Attach() error

	// Restore leaves raw mode. Safe to call multiple times.
	Restore()

	// Size returns current terminal dimensions (columns, rows).
	// Usable before Attach.
	Size() (width, height int)

	// Write writes raw bytes to the terminal output; satisfies io.Writer
	// so the renderer's buffered writer can sit directly on the backend.
	Write(p []byte) (int, error)

	// ReadInput waits up to timeout for input, then drains everything
	// currently buffered in a single read. Returns a nil slice when the
	// timeout expires with nothing available.
	ReadInput(timeout time.Duration) ([]byte, error)
}
