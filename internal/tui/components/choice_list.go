package components

import (
	"fmt"
	"strings"

	"github.com/duckpond/quackchat/internal/script"
	"github.com/duckpond/quackchat/internal/tui/styles"
)

// ChoiceList presents the branch options of the active step. Options keep
// script order and are addressable by focus index or number hotkey.
type ChoiceList struct {
	Choices  []script.Choice
	Focused  int
	Selected string
}

// NewChoiceList creates a list focused on the first option.
func NewChoiceList(choices []script.Choice) *ChoiceList {
	return &ChoiceList{Choices: choices}
}

// FocusNext moves focus down, wrapping at the end.
func (c *ChoiceList) FocusNext() {
	if len(c.Choices) == 0 {
		return
	}
	c.Focused = (c.Focused + 1) % len(c.Choices)
}

// FocusPrev moves focus up, wrapping at the start.
func (c *ChoiceList) FocusPrev() {
	if len(c.Choices) == 0 {
		return
	}
	c.Focused = (c.Focused - 1 + len(c.Choices)) % len(c.Choices)
}

// FocusedID returns the ID of the focused choice, or "" when empty.
func (c *ChoiceList) FocusedID() string {
	if c.Focused < 0 || c.Focused >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Focused].ID
}

// IDForHotkey maps a 1-based number key to a choice ID. Returns "" when the
// key is out of range.
func (c *ChoiceList) IDForHotkey(n int) string {
	idx := n - 1
	if idx < 0 || idx >= len(c.Choices) {
		return ""
	}
	return c.Choices[idx].ID
}

// IDForRow maps a rendered row index to a choice ID. Used for mouse clicks,
// where each choice occupies one row.
func (c *ChoiceList) IDForRow(row int) string {
	if row < 0 || row >= len(c.Choices) {
		return ""
	}
	return c.Choices[row].ID
}

// MarkSelected records the chosen option so the list can render it disabled.
func (c *ChoiceList) MarkSelected(id string) {
	c.Selected = id
}

// Render renders the options, one per row.
func (c *ChoiceList) Render(styleSet styles.Styles) string {
	if len(c.Choices) == 0 {
		return ""
	}

	var rows []string
	for i, choice := range c.Choices {
		label := fmt.Sprintf("%d. %s", i+1, choice.Text)
		switch {
		case c.Selected != "" && choice.ID == c.Selected:
			rows = append(rows, styleSet.Chosen.Render("✓ "+label))
		case c.Selected != "":
			rows = append(rows, styleSet.Muted.Render("  "+label))
		case i == c.Focused:
			rows = append(rows, styleSet.Focus.Render("▸ "+label))
		default:
			rows = append(rows, styleSet.Choice.Render("  "+label))
		}
	}
	return strings.Join(rows, "\n")
}
