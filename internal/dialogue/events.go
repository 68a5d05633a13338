package dialogue

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/script"
)

// EventType categorizes playback events.
type EventType string

const (
	EventPlaybackStarted   EventType = "playback.started"
	EventPlaybackCompleted EventType = "playback.completed"

	EventLineRendered EventType = "line.rendered"
	EventLineSkipped  EventType = "line.skipped"

	EventChoicesPresented EventType = "choices.presented"
	EventChoiceSelected   EventType = "choice.selected"
	EventFeedbackShown    EventType = "feedback.shown"

	EventBackNavigated EventType = "back.navigated"
)

// Event is a single playback occurrence.
type Event struct {
	Type      EventType
	StepIndex int
	Speaker   script.Speaker
	ChoiceID  string
	Text      string
	At        time.Time
}

// Recorder receives playback events. Implementations must not block; the
// engine runs on the UI event loop.
type Recorder interface {
	Record(Event)
}

// NopRecorder discards all events.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(Event) {}

// LogRecorder writes playback events to a zerolog logger, tagged with a
// per-run session ID.
type LogRecorder struct {
	logger  zerolog.Logger
	session string
}

// NewLogRecorder creates a recorder with a fresh session ID.
func NewLogRecorder(logger zerolog.Logger) *LogRecorder {
	return &LogRecorder{
		logger:  logger,
		session: uuid.NewString(),
	}
}

// SessionID returns the recorder's session identifier.
func (r *LogRecorder) SessionID() string {
	return r.session
}

// Record implements Recorder.
func (r *LogRecorder) Record(event Event) {
	entry := r.logger.Debug().
		Str("session", r.session).
		Str("event", string(event.Type)).
		Int("step", event.StepIndex)
	if event.Speaker != "" {
		entry = entry.Str("speaker", string(event.Speaker))
	}
	if event.ChoiceID != "" {
		entry = entry.Str("choice", event.ChoiceID)
	}
	entry.Msg(string(event.Type))
}
