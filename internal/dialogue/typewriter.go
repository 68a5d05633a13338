package dialogue

import (
	"math/rand"
	"time"
)

// typewriter reveals a line rune by rune. It is pull-driven: the engine calls
// Tick with the current time and the typewriter reveals every glyph whose
// deadline has passed. Skip reveals the remainder immediately. Completion is
// observable exactly once through consumeDone, whether reached by full
// play-out or by cancellation.
type typewriter struct {
	runes    []rune
	revealed int

	base   time.Duration
	jitter time.Duration
	rng    *rand.Rand

	nextAt    time.Time
	done      bool
	doneFired bool

	// gen ties this reveal to the render generation that started it; the
	// engine drops ticks from stale generations.
	gen int
}

func newTypewriter(text string, base, jitter time.Duration, rng *rand.Rand, now time.Time, gen int) *typewriter {
	tw := &typewriter{
		runes:  []rune(text),
		base:   base,
		jitter: jitter,
		rng:    rng,
		gen:    gen,
	}
	if len(tw.runes) == 0 {
		tw.done = true
		return tw
	}
	tw.nextAt = now.Add(tw.delay())
	return tw
}

func (t *typewriter) delay() time.Duration {
	d := t.base
	if t.jitter > 0 && t.rng != nil {
		d += time.Duration(t.rng.Int63n(int64(t.jitter)))
	}
	return d
}

// tick reveals every glyph due at now and returns the newly revealed runes.
func (t *typewriter) tick(now time.Time) []rune {
	if t.done {
		return nil
	}

	var revealed []rune
	for t.revealed < len(t.runes) && !now.Before(t.nextAt) {
		revealed = append(revealed, t.runes[t.revealed])
		t.revealed++
		t.nextAt = t.nextAt.Add(t.delay())
	}

	if t.revealed >= len(t.runes) {
		t.done = true
	}
	return revealed
}

// skip reveals the full text and marks the reveal complete.
func (t *typewriter) skip() {
	t.revealed = len(t.runes)
	t.done = true
}

// consumeDone reports completion exactly once.
func (t *typewriter) consumeDone() bool {
	if !t.done || t.doneFired {
		return false
	}
	t.doneFired = true
	return true
}

// text returns the currently revealed prefix.
func (t *typewriter) text() string {
	return string(t.runes[:t.revealed])
}

// full returns the complete line.
func (t *typewriter) full() string {
	return string(t.runes)
}
