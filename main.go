package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/pacer/audio"
	"github.com/lixenwraith/pacer/constants"
	"github.com/lixenwraith/pacer/game"
	"github.com/lixenwraith/pacer/input"
	"github.com/lixenwraith/pacer/render"
	"github.com/lixenwraith/pacer/terminal"
)

var (
	widthFlag   = flag.Int("width", constants.FrameWidth, "Frame width, border included")
	heightFlag  = flag.Int("height", constants.FrameHeight, "Frame height, border included")
	tickFlag    = flag.Duration("tick", constants.TickInterval, "Tick interval")
	gapFillFlag = flag.Int("gap-fill", constants.GapFillTicks, "Key-repeat smoothing window in ticks")
	soundFlag   = flag.Bool("sound", true, "Enable feedback tones")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPACER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := game.Config{
		TickInterval: *tickFlag,
		GapFillTicks: *gapFillFlag,
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = constants.TickInterval
	}

	// Board construction fails before any terminal mutation
	board, err := game.NewBoard(*widthFlag-2, *heightFlag-2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		os.Exit(1)
	}

	backend := terminal.NewBackend()

	// All frame output flows through the backend like input does
	renderer := render.New(backend)
	handler := input.NewHandler(backend, cfg.GapFillTicks)

	sound := audio.NewSoundManager()
	var sounder game.Sounder
	if *soundFlag {
		if err := sound.Initialize(); err == nil {
			sounder = sound
			defer sound.Close()
		} else {
			fmt.Fprintf(os.Stderr, "pacer: audio unavailable: %v (continuing without sound)\n", err)
		}
	}

	// Size precondition checked against the live terminal before raw mode
	termW, termH := backend.Size()
	g, err := game.New(board, handler, renderer, sounder, termW, termH, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		os.Exit(1)
	}

	if err := backend.Attach(); err != nil {
		fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup; both calls are idempotent and their
	// order does not matter
	defer backend.Restore()
	defer renderer.Restore()

	// Raw mode disables keyboard-generated signals, but an external TERM/INT
	// must still tear the terminal down like a normal quit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		<-sigCh
		close(stop)
	}()

	if err := g.Run(stop); err != nil {
		renderer.Restore()
		backend.Restore()
		sound.Close()
		fmt.Fprintf(os.Stderr, "pacer: %v\n", err)
		os.Exit(1)
	}

	// Give the quit blip a moment to drain before the speaker closes
	if sounder != nil {
		time.Sleep(quitToneDrain)
	}
}

// quitToneDrain matches the quit blip length in the audio package
const quitToneDrain = 100 * time.Millisecond
