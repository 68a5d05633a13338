package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quackchat.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
typing:
  base_delay: 10ms
  jitter: 5ms
audio:
  volume: 0.3
speakers:
  a: Prof
tui:
  theme: high-contrast
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Typing.BaseDelay != 10*time.Millisecond {
		t.Errorf("base delay = %v, want 10ms", cfg.Typing.BaseDelay)
	}
	if cfg.Typing.Jitter != 5*time.Millisecond {
		t.Errorf("jitter = %v, want 5ms", cfg.Typing.Jitter)
	}
	if cfg.Audio.Volume != 0.3 {
		t.Errorf("volume = %v, want 0.3", cfg.Audio.Volume)
	}
	if cfg.Speakers.A != "Prof" {
		t.Errorf("speaker a = %q, want Prof", cfg.Speakers.A)
	}
	if cfg.Speakers.B != "The Duck" {
		t.Errorf("speaker b should keep default, got %q", cfg.Speakers.B)
	}
	if cfg.TUI.Theme != "high-contrast" {
		t.Errorf("theme = %q, want high-contrast", cfg.TUI.Theme)
	}
}

func TestLoadMissingSearchFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Typing.BaseDelay != defaults.Typing.BaseDelay {
		t.Errorf("base delay = %v, want default %v", cfg.Typing.BaseDelay, defaults.Typing.BaseDelay)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should be enabled by default")
	}
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidVolume(t *testing.T) {
	path := writeConfig(t, "audio:\n  volume: 1.5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for volume > 1")
	}
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	path := writeConfig(t, "typing:\n  base_delay: -5ms\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative base delay")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("QUACKCHAT_TUI_THEME", "high-contrast")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TUI.Theme != "high-contrast" {
		t.Errorf("theme = %q, want env override high-contrast", cfg.TUI.Theme)
	}
}

func TestMuteSwitch(t *testing.T) {
	s := NewMuteSwitch(false)
	if s.Muted() {
		t.Fatal("fresh switch should be unmuted")
	}
	if !s.Toggle() {
		t.Fatal("toggle should return new muted state")
	}
	if s.Toggle() {
		t.Fatal("second toggle should unmute")
	}
	if s.Muted() {
		t.Fatal("switch should end unmuted")
	}
}
