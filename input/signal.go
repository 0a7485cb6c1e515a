// Package input turns drained raw-mode byte chunks into per-tick movement
// signals: latest direction wins, quit wins over everything, and short idle
// gaps after a real key press are bridged by synthesized continuation steps.
package input

// Kind discriminates per-tick input signals
type Kind uint8

const (
	// KindNone means no actionable input arrived this tick
	KindNone Kind = iota

	// KindDirection carries a unit movement delta
	KindDirection

	// KindQuit ends the game loop ('q', 'Q', Ctrl+C)
	KindQuit
)

// Signal is the single outcome of one input poll
type Signal struct {
	Kind   Kind
	DX, DY int
}

// Unit direction signals
var (
	Up    = Signal{Kind: KindDirection, DX: 0, DY: -1}
	Down  = Signal{Kind: KindDirection, DX: 0, DY: 1}
	Left  = Signal{Kind: KindDirection, DX: -1, DY: 0}
	Right = Signal{Kind: KindDirection, DX: 1, DY: 0}

	None = Signal{Kind: KindNone}
	Quit = Signal{Kind: KindQuit}
)
