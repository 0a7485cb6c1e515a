// Package audio plays short feedback tones through the system speaker.
// Audio is always optional: a failed device init degrades to silence and
// never blocks or aborts the game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Tone frequencies and lengths
const (
	bumpFreq = 220.0
	bumpLen  = 40 * time.Millisecond

	quitFreq = 880.0
	quitLen  = 80 * time.Millisecond
)

// SoundManager manages the speaker lifecycle and the game's feedback tones
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

// NewSoundManager creates a sound manager; no device is touched until Initialize
func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize sets up the audio system. Failure is reported but callers are
// expected to continue without sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Close shuts the speaker down. Safe without a prior Initialize.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Close()
	sm.initialized = false
}

// PlayBump plays the low blip for a move absorbed at the border
func (sm *SoundManager) PlayBump() {
	sm.playTone(bumpFreq, bumpLen)
}

// PlayQuit plays the exit blip
func (sm *SoundManager) PlayQuit() {
	sm.playTone(quitFreq, quitLen)
}

func (sm *SoundManager) playTone(freq float64, d time.Duration) {
	sm.mu.Lock()
	ok := sm.initialized
	sm.mu.Unlock()
	if !ok {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
