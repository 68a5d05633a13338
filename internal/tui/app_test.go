package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/assets"
	"github.com/duckpond/quackchat/internal/config"
	"github.com/duckpond/quackchat/internal/script"
)

func testModel(t *testing.T) model {
	t.Helper()

	s := &script.Script{
		Name: "test",
		Speakers: map[script.Speaker]string{
			script.SpeakerA: "Bot",
			script.SpeakerB: "Duck",
		},
		Steps: []script.Step{
			{ID: 0, Speaker: script.SpeakerA, Text: "hello"},
			{ID: 1, Speaker: script.SpeakerB, Text: "hi"},
		},
	}

	m, err := initialModel(Config{
		Script:   s,
		Settings: *config.DefaultConfig(),
		Mute:     config.NewMuteSwitch(false),
	})
	if err != nil {
		t.Fatalf("initialModel: %v", err)
	}
	return m
}

func TestViewWarnsOnSmallTerminal(t *testing.T) {
	m := testModel(t)
	m.width = 30
	m.height = 8

	out := m.View()
	if !strings.Contains(out, "Terminal too small") {
		t.Fatalf("expected resize warning, got:\n%s", out)
	}
}

func TestHistoryOverlayToggles(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = next.(model)
	if !m.showHistory {
		t.Fatal("expected history overlay to open on h")
	}
	if !strings.Contains(m.View(), "Chat History") {
		t.Fatal("expected history panel in view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	if m.showHistory {
		t.Fatal("expected esc to close history overlay")
	}
}

func TestMuteKeyTogglesSwitch(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = next.(model)
	if !m.mute.Muted() {
		t.Fatal("expected m to mute")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = next.(model)
	if m.mute.Muted() {
		t.Fatal("expected second m to unmute")
	}
}

func TestScriptSpeakerNamesWinOverSettings(t *testing.T) {
	m := testModel(t)

	if m.nameA != "Bot" || m.nameB != "Duck" {
		t.Fatalf("expected script names Bot/Duck, got %q/%q", m.nameA, m.nameB)
	}

	m.engine.Start()
	if got := m.engine.SpeakerLabel(); got != "Bot" {
		t.Fatalf("bubble label = %q, want script name Bot", got)
	}
}

func TestSettingsNamesFillUnnamedScript(t *testing.T) {
	s := &script.Script{
		Name: "bare",
		Steps: []script.Step{
			{ID: 0, Speaker: script.SpeakerA, Text: "hello"},
		},
	}
	cfg := *config.DefaultConfig()
	cfg.Speakers = config.SpeakerNames{A: "Prof", B: "Student"}

	m, err := initialModel(Config{Script: s, Settings: cfg})
	if err != nil {
		t.Fatalf("initialModel: %v", err)
	}

	if m.nameA != "Prof" || m.nameB != "Student" {
		t.Fatalf("expected settings names Prof/Student, got %q/%q", m.nameA, m.nameB)
	}

	m.engine.Start()
	if got := m.engine.SpeakerLabel(); got != "Prof" {
		t.Fatalf("bubble label = %q, want settings name Prof", got)
	}
}

func TestOnExitRunsOnQuit(t *testing.T) {
	s := &script.Script{
		Name: "bye",
		Steps: []script.Step{
			{ID: 0, Speaker: script.SpeakerA, Text: "hello"},
		},
	}

	exited := false
	m, err := initialModel(Config{
		Script:   s,
		Settings: *config.DefaultConfig(),
		OnExit:   func() { exited = true },
	})
	if err != nil {
		t.Fatalf("initialModel: %v", err)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !exited {
		t.Fatal("expected OnExit hook to run on quit")
	}
}

func TestTitleBannerFromAssets(t *testing.T) {
	dir := t.TempDir()
	banner := "** savings time **"
	if err := os.WriteFile(filepath.Join(dir, "banner.txt"), []byte(banner+"\n"), 0644); err != nil {
		t.Fatalf("write banner: %v", err)
	}

	m := testModel(t)
	m.assets = assets.NewResolver(dir, zerolog.Nop())

	if !strings.Contains(m.View(), banner) {
		t.Fatalf("expected banner asset in view:\n%s", m.View())
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(t)

	for _, key := range []string{"q", "ctrl+c"} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		}
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", key)
		}
	}
}
