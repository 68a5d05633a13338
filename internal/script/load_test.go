package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example.yaml")

	yaml := `name: example
description: Example script
speakers:
  a: Host
  b: Guest
steps:
  - id: 0
    speaker: a
    text: "Hello there"
  - id: 1
    speaker: b
    text: "Hi!"
  - id: 2
    speaker: a
    text: "Pick one"
    choices:
      - id: x
        text: "Option X"
        next: 3
        feedback: "Good pick"
      - id: y
        text: "Option Y"
        next: 3
  - id: 3
    speaker: a
    text: "Done"
`

	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if s.Name != "example" {
		t.Fatalf("expected name example, got %q", s.Name)
	}
	if s.Source != path {
		t.Fatalf("expected source %q, got %q", path, s.Source)
	}
	if s.SpeakerName(SpeakerA) != "Host" {
		t.Fatalf("expected speaker A name Host, got %q", s.SpeakerName(SpeakerA))
	}
	if !s.Steps[2].HasChoices() {
		t.Fatalf("expected step 2 to have choices")
	}
	if got := s.Steps[2].Choices[0].Feedback; got != "Good pick" {
		t.Fatalf("expected feedback to survive parsing, got %q", got)
	}
}

func TestParseRejectsOutOfRangeNext(t *testing.T) {
	yaml := `name: broken
steps:
  - id: 0
    speaker: a
    text: "Pick"
    choices:
      - id: x
        text: "Option"
        next: 9
`

	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatalf("expected parse error for out-of-range next")
	}
	if !errors.Is(err, ErrInvalidStepReference) {
		t.Fatalf("expected ErrInvalidStepReference, got %v", err)
	}
}

func TestParseRejectsDuplicateStepIDs(t *testing.T) {
	yaml := `name: dup
steps:
  - id: 0
    speaker: a
    text: "One"
  - id: 0
    speaker: b
    text: "Two"
`

	_, err := Parse([]byte(yaml))
	if !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
}

func TestParseRejectsUnknownSpeaker(t *testing.T) {
	yaml := `name: who
steps:
  - id: 0
    speaker: goose
    text: "Honk"
`

	_, err := Parse([]byte(yaml))
	if !errors.Is(err, ErrInvalidScript) {
		t.Fatalf("expected ErrInvalidScript, got %v", err)
	}
}

func TestLoadDirSkipsNonYAML(t *testing.T) {
	dir := t.TempDir()
	good := `name: only
steps:
  - id: 0
    speaker: a
    text: "Hi"
`
	if err := os.WriteFile(filepath.Join(dir, "only.yaml"), []byte(good), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("write extra file: %v", err)
	}

	scripts, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(scripts) != 1 {
		t.Fatalf("expected 1 script, got %d", len(scripts))
	}
}

func TestLoadBuiltins(t *testing.T) {
	scripts, err := LoadBuiltins()
	if err != nil {
		t.Fatalf("LoadBuiltins: %v", err)
	}
	if len(scripts) == 0 {
		t.Fatalf("expected at least one builtin script")
	}

	def, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if def.Name != "savings-lesson" {
		t.Fatalf("expected savings-lesson, got %q", def.Name)
	}
	if def.Source != "builtin" {
		t.Fatalf("expected builtin source, got %q", def.Source)
	}
	if err := def.Validate(); err != nil {
		t.Fatalf("builtin script should validate: %v", err)
	}
}

func TestClampIndex(t *testing.T) {
	s := &Script{Steps: []Step{
		{ID: 0, Speaker: SpeakerA, Text: "one"},
		{ID: 1, Speaker: SpeakerB, Text: "two"},
	}}

	if got := s.ClampIndex(-5); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := s.ClampIndex(7); got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if got := s.ClampIndex(1); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
