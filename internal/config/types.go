// Package config provides configuration loading for QuackChat.
//
// Configuration is loaded with Viper: YAML config file, environment variable
// overrides (QUACKCHAT_ prefix), then [DefaultConfig] defaults. Flags bound by
// the CLI take priority over everything.
package config

import (
	"sync/atomic"
	"time"
)

// Config is the root configuration container.
type Config struct {
	// Typing controls the typewriter reveal cadence.
	Typing TypingConfig `mapstructure:"typing"`

	// Playback controls pacing between lines.
	Playback PlaybackConfig `mapstructure:"playback"`

	// Audio contains audio cue settings.
	Audio AudioConfig `mapstructure:"audio"`

	// Speakers overrides the display names of the two personas.
	Speakers SpeakerNames `mapstructure:"speakers"`

	// Assets configures asset directory probing.
	Assets AssetsConfig `mapstructure:"assets"`

	// ScriptsDir is an optional directory of user script files.
	ScriptsDir string `mapstructure:"scripts_dir"`

	// TUI contains terminal UI settings.
	TUI TUIConfig `mapstructure:"tui"`

	// Log contains logging settings.
	Log LogConfig `mapstructure:"log"`
}

// TypingConfig controls the per-glyph reveal timing.
type TypingConfig struct {
	// BaseDelay is the minimum pause between revealed glyphs.
	BaseDelay time.Duration `mapstructure:"base_delay"`

	// Jitter is the maximum random addition to BaseDelay per glyph.
	Jitter time.Duration `mapstructure:"jitter"`
}

// PlaybackConfig controls pacing between dialogue beats.
type PlaybackConfig struct {
	// SettleDelay is the pause after a confirmed choice or feedback line
	// before the next step starts typing.
	SettleDelay time.Duration `mapstructure:"settle_delay"`

	// AvatarFade is how long a speaker stays lit after their line completes.
	AvatarFade time.Duration `mapstructure:"avatar_fade"`
}

// AudioConfig contains audio cue settings.
type AudioConfig struct {
	// Enabled turns the audio backend on. When false the player runs silent.
	Enabled bool `mapstructure:"enabled"`

	// Muted is the initial state of the runtime mute switch.
	Muted bool `mapstructure:"muted"`

	// Volume scales cue amplitude, 0.0-1.0.
	Volume float64 `mapstructure:"volume"`
}

// SpeakerNames holds display-name overrides for the two personas.
type SpeakerNames struct {
	A string `mapstructure:"a"`
	B string `mapstructure:"b"`
}

// AssetsConfig configures asset resolution.
type AssetsConfig struct {
	// Dir, when set, is probed before the default candidate locations.
	Dir string `mapstructure:"dir"`
}

// TUIConfig contains terminal UI settings.
type TUIConfig struct {
	// Theme selects a styles palette by name.
	Theme string `mapstructure:"theme"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Typing: TypingConfig{
			BaseDelay: 28 * time.Millisecond,
			Jitter:    40 * time.Millisecond,
		},
		Playback: PlaybackConfig{
			SettleDelay: 700 * time.Millisecond,
			AvatarFade:  900 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Speakers: SpeakerNames{
			A: "QuackBot",
			B: "The Duck",
		},
		TUI: TUIConfig{
			Theme: "default",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// MuteSwitch is a process-wide, observable mute flag. The audio player polls
// it on every playback attempt rather than caching its value at mount.
type MuteSwitch struct {
	muted atomic.Bool
}

// NewMuteSwitch returns a switch with the given initial state.
func NewMuteSwitch(muted bool) *MuteSwitch {
	s := &MuteSwitch{}
	s.muted.Store(muted)
	return s
}

// Muted reports the current state.
func (s *MuteSwitch) Muted() bool {
	if s == nil {
		return false
	}
	return s.muted.Load()
}

// Toggle flips the state and returns the new value.
func (s *MuteSwitch) Toggle() bool {
	for {
		current := s.muted.Load()
		if s.muted.CompareAndSwap(current, !current) {
			return !current
		}
	}
}
