package game

// Position is a 0-indexed interior grid coordinate
type Position struct {
	X, Y int
}

// Player holds the movable cell's current position. It never clamps itself;
// the orchestrator applies Board.Clamp to every candidate before MoveTo, so
// the position is never observably out of bounds between ticks.
type Player struct {
	X, Y int
}

// NewPlayer places a player at the given interior coordinate
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// Pos returns the current position
func (p *Player) Pos() Position {
	return Position{X: p.X, Y: p.Y}
}

// MoveTo sets the position to an already-clamped coordinate
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Move applies an unclamped delta
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}
