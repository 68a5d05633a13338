// Package audio synthesizes the widget's audio cues: a short tick per typed
// glyph and a two-tone chime per completed line.
package audio

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const playerSampleRate = beep.SampleRate(48000)

// ErrUnavailable reports that no audio backend could be opened. It is
// informational: the player degrades to silence rather than failing playback.
var ErrUnavailable = errors.New("audio backend unavailable")

// Player implements the engine's CuePlayer on a beep mixer. At most one clip
// is audible at a time: starting a cue pauses whatever was playing. The mute
// switch is consulted on every playback attempt, never cached.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	active  *beep.Ctrl
	muted   func() bool
	volume  float64
	logger  zerolog.Logger
	started bool
	silent  bool

	// unlocked defers playback until the first user interaction has been
	// observed, mirroring browser autoplay policies.
	unlocked bool
}

// NewPlayer creates a player. muted is polled before every cue; nil means
// never muted.
func NewPlayer(muted func() bool, volume float64, logger zerolog.Logger) *Player {
	if muted == nil {
		muted = func() bool { return false }
	}
	if volume <= 0 || volume > 1 {
		volume = 0.6
	}
	return &Player{
		mixer:  &beep.Mixer{},
		muted:  muted,
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker. Failure is downgraded to silent mode so dialogue
// playback always completes visually.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(playerSampleRate, playerSampleRate.N(100*time.Millisecond)); err != nil {
		p.silent = true
		p.started = true
		p.logger.Warn().Err(err).Msg("audio unavailable, continuing silent")
		return nil
	}

	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Unlock marks that a user interaction happened; cues before this are dropped.
func (p *Player) Unlock() {
	p.mu.Lock()
	p.unlocked = true
	p.mu.Unlock()
}

// CharTone plays the per-glyph tick.
func (p *Player) CharTone() {
	p.play(newToneGenerator(playerSampleRate, waveSine, 880, 60*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond, p.volume*0.4))
}

// LineChime plays the end-of-line melody.
func (p *Player) LineChime() {
	p.play(newChimeGenerator(playerSampleRate, p.volume))
}

// Stop silences the active clip.
func (p *Player) Stop() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.mu.Unlock()

	if active == nil {
		return
	}
	speaker.Lock()
	active.Paused = true
	speaker.Unlock()
}

// Close stops playback entirely.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started || p.silent {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.active = nil
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	ready := p.started && !p.silent && p.unlocked
	p.mu.Unlock()

	if !ready || p.muted() {
		return
	}

	ctrl := &beep.Ctrl{Streamer: s}

	p.mu.Lock()
	previous := p.swapActive(ctrl)
	p.mu.Unlock()

	speaker.Lock()
	if previous != nil {
		previous.Paused = true
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// swapActive installs the new clip handle and returns the one it displaces.
// The caller pauses the displaced clip before the new one is mixed in.
func (p *Player) swapActive(ctrl *beep.Ctrl) *beep.Ctrl {
	previous := p.active
	p.active = ctrl
	return previous
}
