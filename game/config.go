package game

import (
	"time"

	"github.com/lixenwraith/pacer/constants"
)

// Config carries the tunable loop parameters
type Config struct {
	// TickInterval is the target duration of one loop iteration
	TickInterval time.Duration

	// GapFillTicks is the key-repeat smoothing window, in ticks
	GapFillTicks int
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		TickInterval: constants.TickInterval,
		GapFillTicks: constants.GapFillTicks,
	}
}
