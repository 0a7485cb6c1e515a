package input

import "time"

// Source supplies drained input chunks with a bounded wait.
// The runtime entry point hands the Handler a terminal backend; tests hand
// it a synthetic byte source. A nil chunk means the timeout expired.
type Source interface {
	ReadInput(timeout time.Duration) ([]byte, error)
}

// Handler owns per-tick input decoding and the gap-fill smoothing state.
//
// OS key repeat has an initial delay longer than the tick interval, so a
// held key registers once, goes idle for a tick or two, then resumes -
// perceived as a stutter. After a tick that produced a real direction, up to
// gapFillTicks consecutive empty polls each synthesize one continuation step
// in that direction before the handler truly goes idle. This is a tunable
// smoothing heuristic, not an emulation of any particular OS repeat rate.
type Handler struct {
	src Source

	gapFillTicks int

	lastDX, lastDY int
	gapRemaining   int
}

// NewHandler builds a handler over src. Construction performs no I/O.
func NewHandler(src Source, gapFillTicks int) *Handler {
	if gapFillTicks < 0 {
		gapFillTicks = 0
	}
	return &Handler{
		src:          src,
		gapFillTicks: gapFillTicks,
	}
}

// Poll waits up to timeout for input and returns the tick's single signal.
//
// When input is available the whole buffered chunk is drained in one read
// and reduced by parseChunk. A read error is reported as Quit: the loop must
// stop, and the orchestrator's shutdown path restores the terminal either way.
func (h *Handler) Poll(timeout time.Duration) Signal {
	chunk, err := h.src.ReadInput(timeout)
	if err != nil {
		return Quit
	}

	sig := parseChunk(chunk)
	switch sig.Kind {
	case KindDirection:
		h.lastDX, h.lastDY = sig.DX, sig.DY
		h.gapRemaining = h.gapFillTicks
	case KindQuit:
		h.gapRemaining = 0
	case KindNone:
		// A timeout and a noise-only chunk both mean "no new intent this
		// tick"; the smoothing window applies to either, so ignored bytes
		// never stall a held direction
		if h.gapRemaining > 0 {
			h.gapRemaining--
			return Signal{Kind: KindDirection, DX: h.lastDX, DY: h.lastDY}
		}
	}
	return sig
}
