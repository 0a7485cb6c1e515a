package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/pacer/input"
)

// ErrTerminalTooSmall reports a terminal that cannot fit the frame.
// Surfaced before raw mode is entered.
var ErrTerminalTooSmall = errors.New("terminal too small")

// State tracks the orchestrator lifecycle
type State uint8

const (
	StateStarting State = iota
	StateRunning
	StateStopped
)

// Poller yields one input signal per tick, waiting at most timeout
type Poller interface {
	Poll(timeout time.Duration) input.Signal
}

// Display owns terminal output: one full paint at startup, then
// player-cell-only updates
type Display interface {
	DrawFull(b *Board, p *Player) error
	UpdatePlayer(prev, cur Position) error
}

// Sounder plays feedback tones. Implementations must tolerate a failed
// audio device by degrading to silence.
type Sounder interface {
	PlayBump()
	PlayQuit()
}

type noopSounder struct{}

func (noopSounder) PlayBump() {}
func (noopSounder) PlayQuit() {}

// Game drives the tick loop: poll input, clamp the candidate position,
// repaint only the changed cells, sleep the tick remainder.
type Game struct {
	board   *Board
	player  *Player
	poller  Poller
	display Display
	sound   Sounder
	cfg     Config

	state State
}

// New validates the terminal precondition and assembles the orchestrator
// with the player at the board center. termWidth/termHeight are the current
// terminal dimensions; the check runs here so a failure aborts before any
// terminal mutation.
func New(board *Board, poller Poller, display Display, sound Sounder, termWidth, termHeight int, cfg Config) (*Game, error) {
	fw, fh := board.FrameSize()
	if termWidth < fw || termHeight < fh {
		return nil, fmt.Errorf("%w: need at least %dx%d, have %dx%d",
			ErrTerminalTooSmall, fw, fh, termWidth, termHeight)
	}
	if sound == nil {
		sound = noopSounder{}
	}

	cx, cy := board.Center()
	return &Game{
		board:   board,
		player:  NewPlayer(cx, cy),
		poller:  poller,
		display: display,
		sound:   sound,
		cfg:     cfg,
		state:   StateStarting,
	}, nil
}

// Player exposes the current player for the initial full draw and tests
func (g *Game) Player() *Player {
	return g.player
}

// State returns the lifecycle state
func (g *Game) State() State {
	return g.state
}

// Run executes the loop until quit, a read failure, or a close of stop.
// The caller restores terminal state; Run only guarantees the loop halts
// within the tick that observes the quit condition.
func (g *Game) Run(stop <-chan struct{}) error {
	if err := g.display.DrawFull(g.board, g.player); err != nil {
		g.state = StateStopped
		return fmt.Errorf("initial draw: %w", err)
	}
	g.state = StateRunning

	for g.state == StateRunning {
		tickStart := time.Now()

		// External termination is an exit path like any other; observed at
		// the top of the tick so cleanup ordering matches a normal quit.
		select {
		case <-stop:
			g.halt()
			return nil
		default:
		}

		sig := g.poller.Poll(g.cfg.TickInterval)
		switch sig.Kind {
		case input.KindQuit:
			g.sound.PlayQuit()
			g.halt()
			return nil

		case input.KindDirection:
			if err := g.step(sig.DX, sig.DY); err != nil {
				g.halt()
				return err
			}
		}

		if rem := g.cfg.TickInterval - time.Since(tickStart); rem > 0 {
			time.Sleep(rem)
		}
	}
	return nil
}

// step applies one clamped movement and repaints the delta if it moved.
// A failed repaint is fatal: the frame on screen no longer matches the
// player state, so the loop must stop and surface the error.
func (g *Game) step(dx, dy int) error {
	nx, ny := g.board.Clamp(g.player.X+dx, g.player.Y+dy)
	if nx == g.player.X && ny == g.player.Y {
		// Clamp absorbed the move at the border
		g.sound.PlayBump()
		return nil
	}

	prev := g.player.Pos()
	g.player.MoveTo(nx, ny)
	if err := g.display.UpdatePlayer(prev, g.player.Pos()); err != nil {
		return fmt.Errorf("player repaint: %w", err)
	}
	return nil
}

func (g *Game) halt() {
	g.state = StateStopped
}
