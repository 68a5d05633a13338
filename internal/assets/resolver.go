// Package assets resolves optional visual assets (avatar art, backgrounds)
// from probed directories. A missing asset degrades to a built-in
// placeholder, never an error.
package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/duckpond/quackchat/internal/script"
)

// Resolver probes candidate base directories in order and serves the first
// hit per logical asset key.
type Resolver struct {
	dirs   []string
	logger zerolog.Logger
}

// NewResolver builds a resolver. configuredDir, when set, is probed before
// the standard locations.
func NewResolver(configuredDir string, logger zerolog.Logger) *Resolver {
	dirs := make([]string, 0, 3)
	if configuredDir != "" {
		dirs = append(dirs, configuredDir)
	}
	if base, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(base, "quackchat", "assets"))
	}
	dirs = append(dirs, "assets")

	return &Resolver{dirs: dirs, logger: logger}
}

// Avatar returns ASCII art for a persona. Falls back to a builtin badge.
func (r *Resolver) Avatar(sp script.Speaker) string {
	name := "avatar_a.txt"
	if sp == script.SpeakerB {
		name = "avatar_b.txt"
	}
	if art, ok := r.read(name); ok {
		return art
	}
	if sp == script.SpeakerA {
		return placeholderA
	}
	return placeholderB
}

// Background returns a named background banner, if present.
func (r *Resolver) Background(name string) (string, bool) {
	return r.read(name + ".txt")
}

func (r *Resolver) read(name string) (string, bool) {
	for _, dir := range r.dirs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		return strings.TrimRight(string(data), "\n"), true
	}
	r.logger.Debug().Str("asset", name).Msg("asset not found, using placeholder")
	return "", false
}

// Builtin placeholder art, used when no asset directory provides a file.
const placeholderA = ` [o_o]
 /|_|\
  d b`

const placeholderB = `  __
<(o )___
 ( ._> /
  '---'`
