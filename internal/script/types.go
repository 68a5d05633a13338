// Package script provides the dialogue script data model and loading.
package script

// Speaker identifies one of the two fixed personas.
type Speaker string

const (
	// SpeakerA is the host persona (the left avatar).
	SpeakerA Speaker = "a"

	// SpeakerB is the guest persona (the right avatar). Choice echoes are
	// attributed to SpeakerB.
	SpeakerB Speaker = "b"
)

// Valid reports whether the speaker is one of the two personas.
func (s Speaker) Valid() bool {
	return s == SpeakerA || s == SpeakerB
}

// Choice is one selectable branch of a step.
type Choice struct {
	// ID is unique within the owning step.
	ID string `yaml:"id"`

	// Text is the user-facing option text, echoed as a SpeakerB line when
	// selected.
	Text string `yaml:"text"`

	// Next is the step index playback resumes at after the choice resolves.
	Next int `yaml:"next"`

	// Feedback, when set, is shown as an inline SpeakerA line before control
	// transfers to Next.
	Feedback string `yaml:"feedback,omitempty"`
}

// Step is a single dialogue beat. A step either carries choices (branching)
// or relies on implicit linear advance to the next index.
type Step struct {
	ID      int      `yaml:"id"`
	Speaker Speaker  `yaml:"speaker"`
	Text    string   `yaml:"text"`
	Choices []Choice `yaml:"choices,omitempty"`
}

// HasChoices reports whether the step branches.
func (s Step) HasChoices() bool {
	return len(s.Choices) > 0
}

// Script is an immutable ordered dialogue, supplied at mount time.
type Script struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Speakers    map[Speaker]string `yaml:"speakers,omitempty"`
	Steps       []Step             `yaml:"steps"`

	// Source is the file path the script was loaded from, or "builtin".
	Source string `yaml:"-"`
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.Steps)
}

// ClampIndex clamps i into the valid step range.
func (s *Script) ClampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(s.Steps) {
		return len(s.Steps) - 1
	}
	return i
}

// StepAt returns the step at the clamped index.
func (s *Script) StepAt(i int) Step {
	return s.Steps[s.ClampIndex(i)]
}

// SpeakerName returns the display name for a persona, falling back to a
// generic label when no override is present.
func (s *Script) SpeakerName(sp Speaker) string {
	if name, ok := s.Speakers[sp]; ok && name != "" {
		return name
	}
	if sp == SpeakerA {
		return "Speaker A"
	}
	return "Speaker B"
}
