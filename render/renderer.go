// Package render paints the game to an ANSI terminal: one buffered
// full-frame draw at startup, then minimal player-cell diffs. The border and
// untouched interior are never repainted after the first draw; flicker
// reduction is entirely this contract.
package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/pacer/constants"
	"github.com/lixenwraith/pacer/game"
	"github.com/lixenwraith/pacer/terminal"
)

// SGR fragments (avoid per-tick formatting)
var (
	sgrPlayer = []byte("\x1b[97m") // Bright white
	sgrBorder = []byte("\x1b[94m") // Bright blue
)

// Renderer writes frames to a terminal-shaped io.Writer. All writes within a
// tick are buffered and flushed once, so a partially written frame is never
// visible.
type Renderer struct {
	w *bufio.Writer

	// Frame height recorded at DrawFull, used to park the cursor on Restore
	frameHeight int
}

// New builds a renderer over w (the real runtime passes the terminal backend)
func New(w io.Writer) *Renderer {
	return &Renderer{
		w: bufio.NewWriterSize(w, 32*1024),
	}
}

// DrawFull clears the screen and paints the bordered frame with the player
// at its position. Called exactly once, at startup; every later repaint goes
// through UpdatePlayer.
func (r *Renderer) DrawFull(b *game.Board, p *game.Player) error {
	fw, fh := b.FrameSize()
	r.frameHeight = fh

	r.w.Write(terminal.CSICursorHide)
	r.w.Write(terminal.CSIAutoWrapOff)
	r.w.Write(terminal.CSIClear)

	r.w.Write(sgrBorder)

	// Top border
	r.w.WriteRune(constants.BorderTopLeft)
	for x := 0; x < fw-2; x++ {
		r.w.WriteRune(constants.BorderHorizontal)
	}
	r.w.WriteRune(constants.BorderTopRight)

	// Interior rows
	for y := 1; y < fh-1; y++ {
		terminal.WriteCursorPos(r.w, 0, y)
		r.w.WriteRune(constants.BorderVertical)
		for x := 0; x < fw-2; x++ {
			r.w.WriteByte(constants.BackgroundGlyph)
		}
		r.w.WriteRune(constants.BorderVertical)
	}

	// Bottom border
	terminal.WriteCursorPos(r.w, 0, fh-1)
	r.w.WriteRune(constants.BorderBottomLeft)
	for x := 0; x < fw-2; x++ {
		r.w.WriteRune(constants.BorderHorizontal)
	}
	r.w.WriteRune(constants.BorderBottomRight)

	r.w.Write(terminal.CSISGR0)

	r.paintPlayer(p.Pos())
	return r.w.Flush()
}

// UpdatePlayer erases the previous player cell and paints the new one.
// No-op when the position is unchanged, so an absorbed move never flickers.
func (r *Renderer) UpdatePlayer(prev, cur game.Position) error {
	if prev == cur {
		return nil
	}

	terminal.WriteCursorPos(r.w, prev.X+1, prev.Y+1)
	r.w.WriteByte(constants.BackgroundGlyph)

	r.paintPlayer(cur)
	return r.w.Flush()
}

// Restore re-enables the cursor and parks it below the frame. Idempotent;
// runs on every exit path.
func (r *Renderer) Restore() error {
	if r.frameHeight > 0 {
		terminal.WriteCursorPos(r.w, 0, r.frameHeight)
	}
	r.w.Write(terminal.CSISGR0)
	r.w.Write(terminal.CSIAutoWrapOn)
	r.w.Write(terminal.CSICursorShow)
	return r.w.Flush()
}

// paintPlayer writes the colorized player glyph at an interior position.
// Interior (x,y) sits at frame (x+1,y+1): the border occupies row and
// column zero.
func (r *Renderer) paintPlayer(pos game.Position) {
	terminal.WriteCursorPos(r.w, pos.X+1, pos.Y+1)
	r.w.Write(sgrPlayer)
	r.w.WriteRune(constants.PlayerGlyph)
	r.w.Write(terminal.CSISGR0)
}
