package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the target interval of one loop iteration.
	// Input polling consumes at most this long; the loop sleeps the
	// remainder to keep a steady cadence.
	TickInterval = 50 * time.Millisecond

	// GapFillTicks is the default number of consecutive idle ticks that
	// synthesize a continuation step after a real key press, bridging the
	// OS key-repeat initial delay. Tunable via -gap-fill.
	GapFillTicks = 1
)

// Frame Geometry Constants
const (
	// FrameWidth and FrameHeight are the default outer frame dimensions,
	// border included. The playable interior is two cells smaller on each
	// axis.
	FrameWidth  = 80
	FrameHeight = 24

	// MinInteriorWidth and MinInteriorHeight bound the smallest playable
	// interior a Board accepts. The terminal itself must fit the whole
	// frame; that precondition is checked before raw mode is entered.
	MinInteriorWidth  = 3
	MinInteriorHeight = 3
)
