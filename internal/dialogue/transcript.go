package dialogue

import "github.com/duckpond/quackchat/internal/script"

// InlineEntry marks transcript entries that do not correspond to a script
// step: choice echoes and feedback lines.
const InlineEntry = -1

// Entry is one rendered line of the conversation.
type Entry struct {
	Speaker script.Speaker
	Text    string

	// StepIndex is the index of the step that produced this entry, or
	// InlineEntry for choice echoes and feedback lines. Recording the index
	// makes back-navigation exact instead of relying on text matching.
	StepIndex int
}

// Transcript is the append-only history of rendered lines, ordered by display
// time. It lives for the widget's lifetime and is cleared only on remount.
type Transcript struct {
	entries []Entry
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{entries: make([]Entry, 0, 16)}
}

// Append adds an entry.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

// Snapshot returns a defensive copy for overlay rendering.
func (t *Transcript) Snapshot() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// PopForBack removes the most recent entry and returns the new tail, for
// best-effort back-navigation. It refuses to empty the transcript entirely.
func (t *Transcript) PopForBack() (Entry, bool) {
	if len(t.entries) <= 1 {
		return Entry{}, false
	}
	t.entries = t.entries[:len(t.entries)-1]
	return t.entries[len(t.entries)-1], true
}
