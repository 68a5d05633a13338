package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Focus    lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	SpeakerA lipgloss.Style
	SpeakerB lipgloss.Style
	BubbleA  lipgloss.Style
	BubbleB  lipgloss.Style
	Choice   lipgloss.Style
	Chosen   lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	bubble := lipgloss.NewStyle().
		Foreground(lipgloss.Color(tokens.Text)).
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Theme:    theme,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Focus:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		SpeakerA: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.SpeakerA)).Bold(true),
		SpeakerB: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.SpeakerB)).Bold(true),
		BubbleA:  bubble.Copy().BorderForeground(lipgloss.Color(tokens.SpeakerA)),
		BubbleB:  bubble.Copy().BorderForeground(lipgloss.Color(tokens.SpeakerB)),
		Choice:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Padding(0, 1),
		Chosen:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true).Padding(0, 1),
	}
}
