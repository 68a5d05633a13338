package dialogue

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/script"
)

// Engine errors.
var (
	// ErrNoScript means there is nothing to mount the engine on.
	ErrNoScript = errors.New("no script")
)

// lineKind distinguishes what the typewriter is currently revealing.
type lineKind int

const (
	lineStep lineKind = iota
	lineChoiceEcho
	lineFeedback
)

// Params configures an Engine. Zero values fall back to the standard
// cadence.
type Params struct {
	// TypingBase is the minimum pause between revealed glyphs.
	TypingBase time.Duration

	// TypingJitter is the maximum random addition per glyph.
	TypingJitter time.Duration

	// SettleDelay is the pause after a resolved choice or feedback line
	// before the next step types.
	SettleDelay time.Duration

	// AvatarFade is how long the speaker stays lit after their line.
	AvatarFade time.Duration

	// Cues receives audio side effects. Nil means silent.
	Cues CuePlayer

	// Recorder receives playback events. Nil means discard.
	Recorder Recorder

	// Rand drives typing jitter. Nil uses a time-seeded source.
	Rand *rand.Rand

	// Clock supplies the current time. Nil uses time.Now. Tests inject a
	// fake to drive playback deterministically.
	Clock func() time.Time

	// Logger receives diagnostics.
	Logger zerolog.Logger
}

func (p *Params) applyDefaults() {
	if p.TypingBase == 0 && p.TypingJitter == 0 {
		p.TypingBase = 28 * time.Millisecond
		p.TypingJitter = 40 * time.Millisecond
	}
	if p.SettleDelay == 0 {
		p.SettleDelay = 700 * time.Millisecond
	}
	if p.AvatarFade == 0 {
		p.AvatarFade = 900 * time.Millisecond
	}
	if p.Cues == nil {
		p.Cues = nopCues{}
	}
	if p.Recorder == nil {
		p.Recorder = NopRecorder{}
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if p.Clock == nil {
		p.Clock = time.Now
	}
}

// Engine is the step sequencer. It owns the current index, the single
// authoritative State, and the transcript, and routes every stage click to
// exactly one action. It is single-threaded: all methods must be called from
// the UI event loop.
type Engine struct {
	script *script.Script
	params Params
	cues   CuePlayer
	rec    Recorder
	logger zerolog.Logger
	clock  func() time.Time
	rng    *rand.Rand

	state   State
	index   int
	started bool

	// gen is the render generation. Every new reveal bumps it; work from a
	// stale generation is dropped, so a fast double-advance cannot leave an
	// old reveal mutating state.
	gen int
	tw  *typewriter

	kind          lineKind
	pendingChoice *script.Choice
	pendingNext   int
	settleAt      time.Time

	activeSpeaker script.Speaker
	displayText   string
	displayName   string
	litUntil      time.Time

	transcript *Transcript
}

// New mounts an engine on a script. The script is validated up front: a
// malformed step graph halts mounting rather than stalling mid-conversation.
func New(s *script.Script, params Params) (*Engine, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrNoScript
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("mount script %q: %w", s.Name, err)
	}

	params.applyDefaults()

	return &Engine{
		script:     s,
		params:     params,
		cues:       params.Cues,
		rec:        params.Recorder,
		logger:     params.Logger,
		clock:      params.Clock,
		rng:        params.Rand,
		state:      StateIdle,
		transcript: NewTranscript(),
	}, nil
}

// Start begins playback at step 0.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.rec.Record(Event{Type: EventPlaybackStarted, StepIndex: 0, At: e.clock()})
	e.renderStep(0)
}

// renderStep makes the step at target the single active line. The target is
// clamped into the valid range. Starting a new reveal invalidates any
// in-flight one via the generation counter.
func (e *Engine) renderStep(target int) {
	now := e.clock()
	e.index = e.script.ClampIndex(target)
	step := e.script.StepAt(e.index)

	e.logger.Debug().Int("step", e.index).Str("speaker", string(step.Speaker)).Msg("render step")

	e.gen++
	e.kind = lineStep
	e.pendingChoice = nil
	e.activeSpeaker = step.Speaker
	e.displayName = e.script.SpeakerName(step.Speaker)
	e.displayText = ""
	e.litUntil = time.Time{}
	e.state = StateTyping
	e.tw = newTypewriter(step.Text, e.params.TypingBase, e.params.TypingJitter, e.rng, now, e.gen)

	if e.tw.consumeDone() {
		// Empty line: complete immediately.
		e.finishLine(now)
	}
}

// Tick advances timed work: the typewriter reveal, the settle pause, and the
// avatar fade. The TUI calls it on every animation frame.
func (e *Engine) Tick() {
	now := e.clock()

	if e.state == StateTyping && e.tw != nil && e.tw.gen == e.gen {
		for _, r := range e.tw.tick(now) {
			if r != ' ' && r != '\t' && r != '\n' {
				e.cues.CharTone()
			}
		}
		e.displayText = e.tw.text()
		if e.tw.consumeDone() {
			e.finishLine(now)
		}
		return
	}

	if e.state == StateSettling && !now.Before(e.settleAt) {
		e.renderStep(e.pendingNext)
	}
}

// finishLine runs the once-only post-reveal transition for the line that just
// completed, whether it played out or was skipped.
func (e *Engine) finishLine(now time.Time) {
	e.displayText = e.tw.full()
	e.cues.LineChime()

	switch e.kind {
	case lineStep:
		step := e.script.StepAt(e.index)
		e.transcript.Append(Entry{Speaker: step.Speaker, Text: step.Text, StepIndex: e.index})
		e.rec.Record(Event{Type: EventLineRendered, StepIndex: e.index, Speaker: step.Speaker, Text: step.Text, At: now})

		switch {
		case step.HasChoices():
			// Two-click gate: this click (or natural completion) only ends
			// typing; the next click reveals the choices.
			e.state = StateAwaitingChoiceReveal
		case e.index < e.script.Len()-1:
			e.state = StateAwaitingAdvance
			e.litUntil = now.Add(e.params.AvatarFade)
		default:
			e.state = StateIdle
			e.litUntil = now.Add(e.params.AvatarFade)
			e.rec.Record(Event{Type: EventPlaybackCompleted, StepIndex: e.index, At: now})
		}

	case lineChoiceEcho:
		e.state = StateAwaitingPostChoice
		e.litUntil = now.Add(e.params.AvatarFade)

	case lineFeedback:
		choice := e.pendingChoice
		e.transcript.Append(Entry{Speaker: script.SpeakerA, Text: choice.Feedback, StepIndex: InlineEntry})
		e.rec.Record(Event{Type: EventFeedbackShown, StepIndex: e.index, Speaker: script.SpeakerA, ChoiceID: choice.ID, Text: choice.Feedback, At: now})
		e.beginSettle(e.resolveNext(*choice), now)
	}
}

// Click is the single input entry point. Priority order, first match wins;
// the State sum type guarantees the arms are mutually exclusive. Choice
// selection and overlay controls do not route through here.
func (e *Engine) Click() {
	switch {
	case e.state == StateTyping:
		// Skip: complete the reveal, never advance.
		if e.tw == nil || e.tw.gen != e.gen {
			return
		}
		e.tw.skip()
		e.displayText = e.tw.text()
		e.rec.Record(Event{Type: EventLineSkipped, StepIndex: e.index, At: e.clock()})
		if e.tw.consumeDone() {
			e.finishLine(e.clock())
		}

	case e.state == StateAwaitingPostChoice:
		e.confirmPendingChoice()

	case e.state == StateAwaitingChoiceReveal:
		e.state = StateChoicesVisible
		e.rec.Record(Event{Type: EventChoicesPresented, StepIndex: e.index, At: e.clock()})

	case e.state == StateAwaitingAdvance:
		e.renderStep(e.index + 1)

	default:
		// Idle or Settling: no-op.
	}
}

// SelectChoice resolves a visible choice by ID. It echoes the choice text as
// an inline speaker-B line and holds the choice for the confirming click.
// Returns false when no such choice is selectable.
func (e *Engine) SelectChoice(id string) bool {
	if e.state != StateChoicesVisible {
		return false
	}

	step := e.script.StepAt(e.index)
	var selected *script.Choice
	for i := range step.Choices {
		if step.Choices[i].ID == id {
			selected = &step.Choices[i]
			break
		}
	}
	if selected == nil {
		return false
	}

	now := e.clock()
	choice := *selected
	e.pendingChoice = &choice
	e.transcript.Append(Entry{Speaker: script.SpeakerB, Text: choice.Text, StepIndex: InlineEntry})
	e.rec.Record(Event{Type: EventChoiceSelected, StepIndex: e.index, Speaker: script.SpeakerB, ChoiceID: choice.ID, Text: choice.Text, At: now})

	e.gen++
	e.kind = lineChoiceEcho
	e.activeSpeaker = script.SpeakerB
	e.displayName = e.script.SpeakerName(script.SpeakerB)
	e.displayText = ""
	e.state = StateTyping
	e.tw = newTypewriter(choice.Text, e.params.TypingBase, e.params.TypingJitter, e.rng, now, e.gen)
	if e.tw.consumeDone() {
		e.finishLine(now)
	}
	return true
}

// confirmPendingChoice runs the post-choice transition: feedback line first
// when present, then settle into the resolved next step.
func (e *Engine) confirmPendingChoice() {
	choice := e.pendingChoice
	if choice == nil {
		e.state = StateIdle
		return
	}

	now := e.clock()
	if choice.Feedback != "" {
		e.gen++
		e.kind = lineFeedback
		e.activeSpeaker = script.SpeakerA
		e.displayName = e.script.SpeakerName(script.SpeakerA)
		e.displayText = ""
		e.state = StateTyping
		e.tw = newTypewriter(choice.Feedback, e.params.TypingBase, e.params.TypingJitter, e.rng, now, e.gen)
		if e.tw.consumeDone() {
			e.finishLine(now)
		}
		return
	}

	e.beginSettle(choice.Next, now)
}

// resolveNext applies the duplicate-feedback special case: when the step a
// choice points at repeats the feedback text verbatim, playback skips past it.
// This is a guarded workaround for duplicated script content, deliberately
// not generalized to any other equality.
func (e *Engine) resolveNext(choice script.Choice) int {
	next := choice.Next
	if choice.Feedback != "" && e.script.StepAt(next).Text == choice.Feedback {
		next++
	}
	return next
}

func (e *Engine) beginSettle(next int, now time.Time) {
	e.pendingChoice = nil
	if e.params.SettleDelay <= 0 {
		e.renderStep(next)
		return
	}
	e.state = StateSettling
	e.pendingNext = next
	e.settleAt = now.Add(e.params.SettleDelay)
}

// Back re-displays the previous transcript entry statically: no typewriter,
// no audio, no transcript append. Entries that came from a step rewind the
// index exactly; inline entries fall back to latest-text matching, a known
// weak guarantee.
func (e *Engine) Back() bool {
	if e.state == StateTyping || e.state == StateSettling {
		return false
	}

	prev, ok := e.transcript.PopForBack()
	if !ok {
		return false
	}

	now := e.clock()
	e.gen++
	e.tw = nil
	e.pendingChoice = nil

	if prev.StepIndex >= 0 {
		e.index = prev.StepIndex
	} else if found := e.latestStepMatching(prev.Speaker, prev.Text); found >= 0 {
		e.index = found
	}

	e.activeSpeaker = prev.Speaker
	e.displayName = e.script.SpeakerName(prev.Speaker)
	e.displayText = prev.Text
	e.litUntil = now.Add(e.params.AvatarFade)

	step := e.script.StepAt(e.index)
	switch {
	case step.HasChoices() && step.Text == prev.Text:
		e.state = StateAwaitingChoiceReveal
	case e.index < e.script.Len()-1:
		e.state = StateAwaitingAdvance
	default:
		e.state = StateIdle
	}

	e.rec.Record(Event{Type: EventBackNavigated, StepIndex: e.index, Speaker: prev.Speaker, At: now})
	return true
}

func (e *Engine) latestStepMatching(sp script.Speaker, text string) int {
	for i := e.script.Len() - 1; i >= 0; i-- {
		step := e.script.Steps[i]
		if step.Speaker == sp && step.Text == text {
			return i
		}
	}
	return -1
}

// State returns the current sequencer state.
func (e *Engine) State() State {
	return e.state
}

// Index returns the authoritative current step index.
func (e *Engine) Index() int {
	return e.index
}

// ActiveStep returns the step at the current index.
func (e *Engine) ActiveStep() script.Step {
	return e.script.StepAt(e.index)
}

// DisplayedText returns the text currently shown in the line area.
func (e *Engine) DisplayedText() string {
	return e.displayText
}

// SpeakerLabel returns the display name for the line currently shown.
func (e *Engine) SpeakerLabel() string {
	return e.displayName
}

// ActiveSpeaker returns the persona currently speaking.
func (e *Engine) ActiveSpeaker() script.Speaker {
	return e.activeSpeaker
}

// AvatarLit reports whether a persona's avatar should render as speaking.
func (e *Engine) AvatarLit(sp script.Speaker) bool {
	if sp != e.activeSpeaker || !e.started {
		return false
	}
	switch e.state {
	case StateTyping, StateAwaitingChoiceReveal, StateChoicesVisible, StateAwaitingPostChoice:
		return true
	default:
		return e.clock().Before(e.litUntil)
	}
}

// VisibleChoices returns the active step's choices when they are on screen,
// in script order, nil otherwise.
func (e *Engine) VisibleChoices() []script.Choice {
	if e.state != StateChoicesVisible {
		return nil
	}
	return e.script.StepAt(e.index).Choices
}

// HistorySnapshot returns a defensive copy of the transcript.
func (e *Engine) HistorySnapshot() []Entry {
	return e.transcript.Snapshot()
}

// Done reports whether playback reached the terminal state.
func (e *Engine) Done() bool {
	return e.started && e.state == StateIdle
}

// HasTimedWork reports whether Tick still has something to drive; the TUI
// stops its frame timer when this is false.
func (e *Engine) HasTimedWork() bool {
	if e.state == StateTyping || e.state == StateSettling {
		return true
	}
	return e.clock().Before(e.litUntil)
}
