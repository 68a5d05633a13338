// Package dialogue implements the scripted dialogue playback engine: the step
// sequencer state machine, click disambiguation, the typewriter reveal, and
// the transcript store.
package dialogue

// State is the sequencer's authoritative mode. Exactly one state holds at any
// time; the historical widget tracked these as independent booleans that could
// drift into impossible combinations.
type State int

const (
	// StateIdle means no step is active: before Start, or after the final
	// step completes. Clicks are no-ops.
	StateIdle State = iota

	// StateTyping means a line is being revealed glyph by glyph. A click
	// skips to the full text without advancing.
	StateTyping

	// StateAwaitingAdvance means the current step is fully shown and a click
	// advances to the next step.
	StateAwaitingAdvance

	// StateAwaitingChoiceReveal means a branching step finished typing but
	// its choices are not shown yet; a click reveals them.
	StateAwaitingChoiceReveal

	// StateChoicesVisible means the choice list is on screen and selectable.
	StateChoicesVisible

	// StateAwaitingPostChoice means a choice was selected and echoed; a click
	// confirms it and plays any feedback before control transfers.
	StateAwaitingPostChoice

	// StateSettling is the short pause between a resolved choice or feedback
	// line and the next step starting to type. Clicks are no-ops.
	StateSettling
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateTyping:
		return "Typing"
	case StateAwaitingAdvance:
		return "AwaitingAdvance"
	case StateAwaitingChoiceReveal:
		return "AwaitingChoiceReveal"
	case StateChoicesVisible:
		return "ChoicesVisible"
	case StateAwaitingPostChoice:
		return "AwaitingPostChoice"
	case StateSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}
