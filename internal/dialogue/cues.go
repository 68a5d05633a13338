package dialogue

// CuePlayer produces the audio side effects of playback. Implementations own
// the at-most-one-clip-playing invariant and consult the mute switch on every
// call; the engine invokes cues unconditionally and never waits on them.
type CuePlayer interface {
	// CharTone plays the short per-glyph tick.
	CharTone()

	// LineChime plays the end-of-line chime, stopping any active clip first.
	LineChime()

	// Stop silences any active clip.
	Stop()
}

// nopCues is the CuePlayer used when no audio backend is attached.
type nopCues struct{}

func (nopCues) CharTone()  {}
func (nopCues) LineChime() {}
func (nopCues) Stop()      {}
