// Package tui implements the QuackChat terminal widget.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/assets"
	"github.com/duckpond/quackchat/internal/audio"
	"github.com/duckpond/quackchat/internal/config"
	"github.com/duckpond/quackchat/internal/dialogue"
	"github.com/duckpond/quackchat/internal/script"
	"github.com/duckpond/quackchat/internal/tui/components"
	"github.com/duckpond/quackchat/internal/tui/styles"
)

const (
	minWidth  = 50
	minHeight = 16

	// framePeriod is the animation step. At 30 fps the fastest glyph cadence
	// still lands within one frame of its due time.
	framePeriod = 33 * time.Millisecond
)

// Config wires a mounted widget.
type Config struct {
	Script   *script.Script
	Settings config.Config
	Mute     *config.MuteSwitch
	Player   *audio.Player
	Assets   *assets.Resolver
	Recorder dialogue.Recorder
	Logger   zerolog.Logger

	// OnExit, when set, runs once when the user quits the widget.
	OnExit func()
}

// Run mounts the widget and blocks until the user exits.
func Run(cfg Config) error {
	m, err := initialModel(cfg)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if cfg.Player != nil {
		cfg.Player.Close()
	}
	return err
}

type model struct {
	width  int
	height int

	styles styles.Styles
	engine *dialogue.Engine
	assets *assets.Resolver
	player *audio.Player
	mute   *config.MuteSwitch
	nameA  string
	nameB  string
	logger zerolog.Logger

	choices     *components.ChoiceList
	choiceStep  int
	history     *components.HistoryViewer
	showHistory bool
	onExit      func()

	ticking  bool
	unlocked bool
}

func initialModel(cfg Config) (model, error) {
	// Display names resolve once, before the engine mounts: names the script
	// leaves unset come from the settings. Everything downstream (bubble
	// label, avatars, history) reads the script's map.
	resolveSpeakerNames(cfg.Script, cfg.Settings.Speakers)

	engine, err := dialogue.New(cfg.Script, dialogue.Params{
		TypingBase:   cfg.Settings.Typing.BaseDelay,
		TypingJitter: cfg.Settings.Typing.Jitter,
		SettleDelay:  cfg.Settings.Playback.SettleDelay,
		AvatarFade:   cfg.Settings.Playback.AvatarFade,
		Cues:         cues(cfg.Player),
		Recorder:     cfg.Recorder,
		Logger:       cfg.Logger,
	})
	if err != nil {
		return model{}, err
	}

	nameA := cfg.Script.SpeakerName(script.SpeakerA)
	nameB := cfg.Script.SpeakerName(script.SpeakerB)

	return model{
		styles:     styles.BuildStyles(styles.ByName(cfg.Settings.TUI.Theme)),
		engine:     engine,
		assets:     cfg.Assets,
		player:     cfg.Player,
		mute:       cfg.Mute,
		nameA:      nameA,
		nameB:      nameB,
		logger:     cfg.Logger,
		choiceStep: -1,
		history:    components.NewHistoryViewer(nameA, nameB),
		onExit:     cfg.OnExit,
		ticking:    true,
	}, nil
}

func resolveSpeakerNames(s *script.Script, names config.SpeakerNames) {
	if s == nil {
		return
	}
	if s.Speakers == nil {
		s.Speakers = make(map[script.Speaker]string, 2)
	}
	if s.Speakers[script.SpeakerA] == "" && names.A != "" {
		s.Speakers[script.SpeakerA] = names.A
	}
	if s.Speakers[script.SpeakerB] == "" && names.B != "" {
		s.Speakers[script.SpeakerB] = names.B
	}
}

func cues(player *audio.Player) dialogue.CuePlayer {
	if player == nil {
		return nil
	}
	return player
}

func (m model) Init() tea.Cmd {
	m.engine.Start()
	return frameCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Height = msg.Height - 4
		return m, nil

	case frameMsg:
		m.engine.Tick()
		m.syncChoices()
		if m.engine.HasTimedWork() {
			return m, frameCmd()
		}
		m.ticking = false
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.unlock()

	if m.showHistory {
		switch msg.String() {
		case "up", "k":
			m.history.ScrollUp(1)
		case "down", "j":
			m.history.ScrollDown(1)
		case "pgup":
			m.history.ScrollUp(m.history.Height)
		case "pgdown":
			m.history.ScrollDown(m.history.Height)
		case "home":
			m.history.ScrollToTop()
		case "end":
			m.history.ScrollToBottom()
		case "h", "esc":
			m.showHistory = false
		case "q", "ctrl+c":
			return m.quit()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m.quit()

	case "h":
		m.history.SetEntries(m.engine.HistorySnapshot())
		m.showHistory = true
		return m, nil

	case "b":
		if m.engine.Back() {
			m.choices = nil
			m.choiceStep = -1
		}
		return m.rearm()

	case "m":
		if m.mute != nil {
			m.mute.Toggle()
		}
		return m, nil

	case "up", "k":
		if m.choices != nil && m.choices.Selected == "" {
			m.choices.FocusPrev()
		}
		return m, nil

	case "down", "j":
		if m.choices != nil && m.choices.Selected == "" {
			m.choices.FocusNext()
		}
		return m, nil

	case "enter", " ":
		if m.choices != nil && m.choices.Selected == "" && m.engine.State() == dialogue.StateChoicesVisible {
			m.selectChoice(m.choices.FocusedID())
		} else {
			m.engine.Click()
			m.syncChoices()
		}
		return m.rearm()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if m.choices != nil && m.choices.Selected == "" {
			m.selectChoice(m.choices.IDForHotkey(int(msg.String()[0] - '0')))
		}
		return m.rearm()
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.unlock()

	if m.showHistory {
		return m, nil
	}

	// Choice rows sit directly below the stage block. A press on one picks
	// that option; any other press is a stage click.
	if m.choices != nil && m.choices.Selected == "" && m.engine.State() == dialogue.StateChoicesVisible {
		row := msg.Y - lipgloss.Height(m.stageView())
		if id := m.choices.IDForRow(row); id != "" {
			m.selectChoice(id)
			return m.rearm()
		}
		return m, nil
	}

	m.engine.Click()
	m.syncChoices()
	return m.rearm()
}

func (m *model) unlock() {
	if m.unlocked {
		return
	}
	m.unlocked = true
	if m.player != nil {
		m.player.Unlock()
	}
}

func (m *model) selectChoice(id string) {
	if id == "" {
		return
	}
	if m.engine.SelectChoice(id) {
		m.choices.MarkSelected(id)
	}
}

// syncChoices keeps the option list aligned with the engine: built when the
// engine reveals choices, kept while the selection echo plays, dropped once
// playback moves to another step.
func (m *model) syncChoices() {
	if visible := m.engine.VisibleChoices(); visible != nil {
		if m.choiceStep != m.engine.Index() {
			m.choices = components.NewChoiceList(visible)
			m.choiceStep = m.engine.Index()
		}
		return
	}
	if m.choices != nil && m.engine.Index() != m.choiceStep {
		m.choices = nil
		m.choiceStep = -1
	}
}

func (m model) quit() (tea.Model, tea.Cmd) {
	if m.onExit != nil {
		m.onExit()
	}
	return m, tea.Quit
}

func (m model) rearm() (tea.Model, tea.Cmd) {
	if m.engine.HasTimedWork() && !m.ticking {
		m.ticking = true
		return m, frameCmd()
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return fmt.Sprintf("%s\n%s\n",
				m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
				m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)))
		}
	}

	if m.showHistory {
		width := m.width
		if width <= 0 || width > 76 {
			width = 76
		}
		return components.RenderHistoryPanel(m.styles, m.history, width) + "\n"
	}

	sections := []string{m.stageView()}

	if m.choices != nil {
		sections = append(sections, m.choices.Render(m.styles))
	}

	sections = append(sections, "", m.styles.Muted.Render(m.footerLine()))
	return strings.Join(sections, "\n") + "\n"
}

// stageView renders everything above the choice rows. Mouse hit testing
// depends on its height, so choices must never render inside it.
func (m model) stageView() string {
	lines := []string{
		m.titleBanner(),
		"",
		m.avatarRow(),
		"",
		m.bubble(),
		"",
	}
	return strings.Join(lines, "\n")
}

// titleBanner prefers a user-provided banner asset over the plain title.
func (m model) titleBanner() string {
	if m.assets != nil {
		if art, ok := m.assets.Background("banner"); ok {
			return m.styles.Accent.Render(art)
		}
	}
	return m.styles.Title.Render("QuackChat")
}

func (m model) avatarRow() string {
	left := m.avatarBox(script.SpeakerA, m.nameA)
	right := m.avatarBox(script.SpeakerB, m.nameB)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m model) avatarBox(sp script.Speaker, name string) string {
	art := ""
	if m.assets != nil {
		art = m.assets.Avatar(sp)
	}

	nameStyle := m.styles.Muted
	if m.engine.AvatarLit(sp) {
		if sp == script.SpeakerA {
			nameStyle = m.styles.SpeakerA
		} else {
			nameStyle = m.styles.SpeakerB
		}
	}
	return art + "\n" + nameStyle.Render(name)
}

func (m model) bubble() string {
	label := m.engine.SpeakerLabel()
	text := m.engine.DisplayedText()
	if label == "" && text == "" {
		return m.styles.Muted.Render("...")
	}

	bubble := m.styles.BubbleA
	labelStyle := m.styles.SpeakerA
	if m.engine.ActiveSpeaker() == script.SpeakerB {
		bubble = m.styles.BubbleB
		labelStyle = m.styles.SpeakerB
	}
	if m.engine.State() == dialogue.StateTyping {
		text += "▌"
	}

	width := m.width - 6
	if width < 20 || width > 70 {
		width = 70
	}
	return bubble.Copy().Width(width).Render(labelStyle.Render(label) + "\n" + m.styles.Text.Render(text))
}

func (m model) footerLine() string {
	parts := []string{"space/click advance", "h history", "b back", "m mute", "q quit"}
	if m.choices != nil && m.choices.Selected == "" {
		parts = append([]string{"↑/↓ + enter or 1-9 choose"}, parts[1:]...)
	}
	if m.mute != nil && m.mute.Muted() {
		parts = append(parts, "muted")
	}
	if m.engine.Done() {
		parts = append(parts, "conversation over")
	}
	return strings.Join(parts, " | ")
}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(framePeriod, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
