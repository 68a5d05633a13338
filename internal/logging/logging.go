// Package logging configures zerolog for QuackChat.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(io.Discard)
)

// Setup initializes the root logger. Playback runs own the terminal, so the
// default sink is a log file (or discard); stderr is only used when no TUI is
// active.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = io.Discard
	}

	logger := zerolog.New(out).With().Timestamp().Logger().Level(parseLevel(level))

	mu.Lock()
	root = logger
	mu.Unlock()
}

// SetupConsole routes logs to stderr with human-readable formatting. Used by
// non-TUI commands (validate, scripts).
func SetupConsole(level string) {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	Setup(level, writer)
}

// Component returns a logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
