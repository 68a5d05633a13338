package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveforms used by the cue tones.
const (
	waveSine = iota
	waveTriangle
)

// toneGenerator streams a single enveloped tone at unity gain scaled by
// volume. Attack is linear, release exponential, which keeps short clips
// click-free.
type toneGenerator struct {
	sr      beep.SampleRate
	wave    int
	freq    float64
	volume  float64
	pos     int
	total   int
	attack  int
	release int
}

func newToneGenerator(sr beep.SampleRate, wave int, freq float64, dur, attack, release time.Duration, volume float64) *toneGenerator {
	return &toneGenerator{
		sr:      sr,
		wave:    wave,
		freq:    freq,
		volume:  volume,
		total:   sr.N(dur),
		attack:  sr.N(attack),
		release: sr.N(release),
	}
}

func (g *toneGenerator) sample(pos int) float64 {
	if pos < 0 || pos >= g.total {
		return 0
	}

	t := float64(pos) / float64(g.sr)
	phase := math.Mod(g.freq*t, 1.0)

	var raw float64
	switch g.wave {
	case waveTriangle:
		if phase < 0.5 {
			raw = 4*phase - 1
		} else {
			raw = 3 - 4*phase
		}
	default:
		raw = math.Sin(2 * math.Pi * phase)
	}

	env := 1.0
	if g.attack > 0 && pos < g.attack {
		env = float64(pos) / float64(g.attack)
	}
	releaseStart := g.total - g.release
	if g.release > 0 && pos >= releaseStart {
		env *= math.Exp(-4 * float64(pos-releaseStart) / float64(g.release))
	}

	return raw * env * g.volume
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		s := g.sample(g.pos)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// chimeGenerator sums two staggered tones as the end-of-line melody: a
// triangle at 660Hz answered by a sine at 880Hz.
type chimeGenerator struct {
	first  *toneGenerator
	second *toneGenerator
	offset int
	pos    int
	total  int
}

func newChimeGenerator(sr beep.SampleRate, volume float64) *chimeGenerator {
	first := newToneGenerator(sr, waveTriangle, 660, 180*time.Millisecond, 20*time.Millisecond, 60*time.Millisecond, volume)
	second := newToneGenerator(sr, waveSine, 880, 200*time.Millisecond, 40*time.Millisecond, 80*time.Millisecond, volume*0.8)
	offset := sr.N(80 * time.Millisecond)
	return &chimeGenerator{
		first:  first,
		second: second,
		offset: offset,
		total:  offset + second.total,
	}
}

func (g *chimeGenerator) sample(pos int) float64 {
	s := g.first.sample(pos)
	s += g.second.sample(pos - g.offset)
	return s
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		s := g.sample(g.pos)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}
