package script

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	// ErrInvalidScript marks structural problems other than step references.
	ErrInvalidScript = errors.New("invalid script")

	// ErrInvalidStepReference marks a choice or implicit-next pointing outside
	// the step sequence. Surfaced at load/mount time so playback can never
	// reach a stuck state.
	ErrInvalidStepReference = errors.New("invalid step reference")
)

// Validate checks the step graph. It is called at load time; the playback
// engine refuses unvalidated scripts.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: script has no steps", ErrInvalidScript)
	}

	seenIDs := make(map[int]struct{}, len(s.Steps))
	for _, step := range s.Steps {
		if _, dup := seenIDs[step.ID]; dup {
			return fmt.Errorf("%w: duplicate step id %d", ErrInvalidScript, step.ID)
		}
		seenIDs[step.ID] = struct{}{}

		if !step.Speaker.Valid() {
			return fmt.Errorf("%w: step %d has unknown speaker %q", ErrInvalidScript, step.ID, step.Speaker)
		}
		if step.Text == "" {
			return fmt.Errorf("%w: step %d has empty text", ErrInvalidScript, step.ID)
		}

		if err := s.validateChoices(step); err != nil {
			return err
		}
	}

	return nil
}

func (s *Script) validateChoices(step Step) error {
	seen := make(map[string]struct{}, len(step.Choices))
	for _, choice := range step.Choices {
		if choice.ID == "" {
			return fmt.Errorf("%w: step %d has a choice with no id", ErrInvalidScript, step.ID)
		}
		if _, dup := seen[choice.ID]; dup {
			return fmt.Errorf("%w: step %d has duplicate choice id %q", ErrInvalidScript, step.ID, choice.ID)
		}
		seen[choice.ID] = struct{}{}

		if choice.Text == "" {
			return fmt.Errorf("%w: step %d choice %q has empty text", ErrInvalidScript, step.ID, choice.ID)
		}
		if choice.Next < 0 || choice.Next >= len(s.Steps) {
			return fmt.Errorf("%w: step %d choice %q points to step index %d (script has %d steps)",
				ErrInvalidStepReference, step.ID, choice.ID, choice.Next, len(s.Steps))
		}
	}
	return nil
}
