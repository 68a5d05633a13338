// Package components provides reusable pieces of the chat widget UI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/duckpond/quackchat/internal/dialogue"
	"github.com/duckpond/quackchat/internal/script"
	"github.com/duckpond/quackchat/internal/tui/styles"
)

// HistoryViewer displays the transcript overlay as a scrollable list of
// speaker-attributed lines.
type HistoryViewer struct {
	Entries      []dialogue.Entry
	ScrollOffset int
	Height       int
	Width        int

	nameA string
	nameB string
}

// NewHistoryViewer creates a viewer with the given persona display names.
func NewHistoryViewer(nameA, nameB string) *HistoryViewer {
	return &HistoryViewer{
		Height: 20,
		Width:  60,
		nameA:  nameA,
		nameB:  nameB,
	}
}

// SetEntries replaces the viewer content and scrolls to the bottom, where the
// most recent line lives.
func (v *HistoryViewer) SetEntries(entries []dialogue.Entry) {
	v.Entries = entries
	v.ScrollToBottom()
}

// ScrollUp scrolls the view up by n lines.
func (v *HistoryViewer) ScrollUp(n int) {
	v.ScrollOffset -= n
	v.clampScroll()
}

// ScrollDown scrolls the view down by n lines.
func (v *HistoryViewer) ScrollDown(n int) {
	v.ScrollOffset += n
	v.clampScroll()
}

// ScrollToTop scrolls to the oldest entry.
func (v *HistoryViewer) ScrollToTop() {
	v.ScrollOffset = 0
}

// ScrollToBottom scrolls to the newest entry.
func (v *HistoryViewer) ScrollToBottom() {
	v.ScrollOffset = len(v.Entries) - v.visibleLines()
	v.clampScroll()
}

func (v *HistoryViewer) visibleLines() int {
	if v.Height <= 2 {
		return 1
	}
	return v.Height - 2
}

func (v *HistoryViewer) clampScroll() {
	maxOffset := len(v.Entries) - v.visibleLines()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.ScrollOffset > maxOffset {
		v.ScrollOffset = maxOffset
	}
	if v.ScrollOffset < 0 {
		v.ScrollOffset = 0
	}
}

// Render renders the visible slice of the transcript.
func (v *HistoryViewer) Render(styleSet styles.Styles) string {
	if len(v.Entries) == 0 {
		return styleSet.Muted.Render("Nothing said yet.")
	}

	visible := v.visibleLines()
	endIdx := v.ScrollOffset + visible
	if endIdx > len(v.Entries) {
		endIdx = len(v.Entries)
	}

	var rendered []string
	for i := v.ScrollOffset; i < endIdx; i++ {
		rendered = append(rendered, v.renderEntry(styleSet, v.Entries[i]))
	}

	if indicator := v.scrollIndicator(styleSet); indicator != "" {
		rendered = append(rendered, indicator)
	}

	return strings.Join(rendered, "\n")
}

func (v *HistoryViewer) renderEntry(styleSet styles.Styles, entry dialogue.Entry) string {
	name := v.nameA
	nameStyle := styleSet.SpeakerA
	if entry.Speaker == script.SpeakerB {
		name = v.nameB
		nameStyle = styleSet.SpeakerB
	}

	line := fmt.Sprintf("%s %s", nameStyle.Render(name+":"), styleSet.Text.Render(entry.Text))
	if v.Width > 0 && lipgloss.Width(line) > v.Width {
		line = truncate(line, v.Width-3) + "..."
	}
	return line
}

func (v *HistoryViewer) scrollIndicator(styleSet styles.Styles) string {
	total := len(v.Entries)
	visible := v.visibleLines()
	if total <= visible {
		return styleSet.Muted.Render(fmt.Sprintf("─── %d lines ───", total))
	}

	endLine := v.ScrollOffset + visible
	if endLine > total {
		endLine = total
	}
	return styleSet.Muted.Render(fmt.Sprintf("─── %d-%d of %d ───", v.ScrollOffset+1, endLine, total))
}

func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RenderHistoryPanel renders the titled overlay panel around a viewer.
func RenderHistoryPanel(styleSet styles.Styles, viewer *HistoryViewer, width int) string {
	if viewer == nil {
		return ""
	}

	viewer.Width = width - 4
	content := viewer.Render(styleSet)

	header := styleSet.Accent.Render("Chat History")
	footer := styleSet.Muted.Render("↑/↓ scroll · h or esc close")

	return styleSet.Panel.Copy().Width(width).Padding(0, 1).Render(header + "\n" + content + "\n" + footer)
}
