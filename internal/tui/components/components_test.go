package components

import (
	"strings"
	"testing"

	"github.com/duckpond/quackchat/internal/dialogue"
	"github.com/duckpond/quackchat/internal/script"
	"github.com/duckpond/quackchat/internal/tui/styles"
)

func testStyles() styles.Styles {
	return styles.BuildStyles(styles.ByName("default"))
}

func entries(n int) []dialogue.Entry {
	out := make([]dialogue.Entry, 0, n)
	for i := 0; i < n; i++ {
		sp := script.SpeakerA
		if i%2 == 1 {
			sp = script.SpeakerB
		}
		out = append(out, dialogue.Entry{Speaker: sp, Text: "line", StepIndex: i})
	}
	return out
}

func TestHistoryViewerScrollClamping(t *testing.T) {
	v := NewHistoryViewer("Bot", "Duck")
	v.Height = 7 // 5 visible lines
	v.SetEntries(entries(20))

	if v.ScrollOffset != 15 {
		t.Fatalf("expected bottom offset 15, got %d", v.ScrollOffset)
	}

	v.ScrollDown(10)
	if v.ScrollOffset != 15 {
		t.Fatalf("scroll past end should clamp to 15, got %d", v.ScrollOffset)
	}

	v.ScrollUp(100)
	if v.ScrollOffset != 0 {
		t.Fatalf("scroll past start should clamp to 0, got %d", v.ScrollOffset)
	}
}

func TestHistoryViewerRendersSpeakerNames(t *testing.T) {
	v := NewHistoryViewer("QuackBot", "The Duck")
	v.SetEntries([]dialogue.Entry{
		{Speaker: script.SpeakerA, Text: "hello there", StepIndex: 0},
		{Speaker: script.SpeakerB, Text: "hi", StepIndex: 1},
	})

	out := v.Render(testStyles())
	if !strings.Contains(out, "QuackBot:") {
		t.Fatalf("expected persona A name in output:\n%s", out)
	}
	if !strings.Contains(out, "The Duck:") {
		t.Fatalf("expected persona B name in output:\n%s", out)
	}
}

func TestHistoryViewerEmpty(t *testing.T) {
	v := NewHistoryViewer("a", "b")
	out := v.Render(testStyles())
	if !strings.Contains(out, "Nothing said yet") {
		t.Fatalf("expected empty placeholder, got %q", out)
	}
}

func TestChoiceListFocusWraps(t *testing.T) {
	c := NewChoiceList([]script.Choice{
		{ID: "one", Text: "One"},
		{ID: "two", Text: "Two"},
		{ID: "three", Text: "Three"},
	})

	c.FocusPrev()
	if got := c.FocusedID(); got != "three" {
		t.Fatalf("expected wrap to three, got %q", got)
	}
	c.FocusNext()
	if got := c.FocusedID(); got != "one" {
		t.Fatalf("expected wrap back to one, got %q", got)
	}
}

func TestChoiceListHotkeys(t *testing.T) {
	c := NewChoiceList([]script.Choice{
		{ID: "low", Text: "Low"},
		{ID: "high", Text: "High"},
	})

	if got := c.IDForHotkey(2); got != "high" {
		t.Fatalf("hotkey 2 should map to high, got %q", got)
	}
	if got := c.IDForHotkey(3); got != "" {
		t.Fatalf("out of range hotkey should map to empty, got %q", got)
	}
	if got := c.IDForRow(0); got != "low" {
		t.Fatalf("row 0 should map to low, got %q", got)
	}
}

func TestChoiceListMarksSelection(t *testing.T) {
	c := NewChoiceList([]script.Choice{
		{ID: "one", Text: "One"},
		{ID: "two", Text: "Two"},
	})
	c.MarkSelected("two")

	out := c.Render(testStyles())
	if !strings.Contains(out, "✓ 2. Two") {
		t.Fatalf("expected selected marker on Two:\n%s", out)
	}
}
