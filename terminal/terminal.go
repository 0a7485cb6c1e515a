package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if the normal restore path cannot run.
func EmergencyReset(w io.Writer) {
	w.Write(CSICursorShow)
	w.Write(CSISGR0)
	w.Write(CSIAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Attempt raw mode reset - escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}
