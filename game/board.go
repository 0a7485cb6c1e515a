package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pacer/constants"
)

// ErrBoardTooSmall reports a requested interior below the minimum playable size
var ErrBoardTooSmall = errors.New("board below minimum playable size")

// Board is the immutable playable grid: interior cell counts, border
// excluded. Coordinates are 0-indexed relative to the interior; the frame
// around it adds one row/column on each side.
type Board struct {
	Width  int
	Height int
}

// NewBoard validates and builds a board with the given interior dimensions
func NewBoard(width, height int) (*Board, error) {
	if width < constants.MinInteriorWidth || height < constants.MinInteriorHeight {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)",
			ErrBoardTooSmall, width, height,
			constants.MinInteriorWidth, constants.MinInteriorHeight)
	}
	return &Board{Width: width, Height: height}, nil
}

// Center returns the integer-divided midpoint of the interior
func (b *Board) Center() (int, int) {
	return b.Width / 2, b.Height / 2
}

// Clamp projects any coordinate into [0,Width) x [0,Height), saturating at
// the nearest edge. This is the authoritative bounds policy applied to every
// candidate position; it never wraps.
func (b *Board) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	}
	if x >= b.Width {
		x = b.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= b.Height {
		y = b.Height - 1
	}
	return x, y
}

// FrameSize returns the outer frame dimensions, border included
func (b *Board) FrameSize() (int, int) {
	return b.Width + 2, b.Height + 2
}
