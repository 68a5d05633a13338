package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatalf("streamer never finished")
	return nil
}

func TestToneGeneratorBoundsAndDuration(t *testing.T) {
	gen := newToneGenerator(playerSampleRate, waveSine, 880, 60*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond, 0.5)

	samples := drain(t, gen)
	want := playerSampleRate.N(60 * time.Millisecond)
	if len(samples) != want {
		t.Fatalf("expected %d samples, got %d", want, len(samples))
	}

	for i, s := range samples {
		if math.Abs(s) > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, s)
		}
	}

	// Linear attack keeps the first sample silent.
	if samples[0] != 0 {
		t.Fatalf("expected silent first sample, got %f", samples[0])
	}
	// Exponential release keeps the tail quiet.
	if math.Abs(samples[len(samples)-1]) > 0.05 {
		t.Fatalf("expected quiet tail, got %f", samples[len(samples)-1])
	}
}

func TestTriangleWaveBounds(t *testing.T) {
	gen := newToneGenerator(playerSampleRate, waveTriangle, 660, 20*time.Millisecond, 0, 0, 1.0)
	for _, s := range drain(t, gen) {
		if math.Abs(s) > 1.0 {
			t.Fatalf("triangle sample out of range: %f", s)
		}
	}
}

func TestChimeGeneratorStaggersTones(t *testing.T) {
	gen := newChimeGenerator(playerSampleRate, 0.6)

	samples := drain(t, gen)
	if len(samples) != gen.total {
		t.Fatalf("expected %d samples, got %d", gen.total, len(samples))
	}

	// The second tone starts after the offset, so the chime outlasts the
	// first tone alone.
	firstOnly := playerSampleRate.N(180 * time.Millisecond)
	if gen.total <= firstOnly {
		t.Fatalf("chime should outlast its first tone")
	}

	for i, s := range samples {
		if math.Abs(s) > 2.0 {
			t.Fatalf("summed sample %d out of range: %f", i, s)
		}
	}
}

func TestSwapActivePausesPreviousClip(t *testing.T) {
	p := NewPlayer(nil, 0.6, zerolog.Nop())

	first := &beep.Ctrl{}
	if prev := p.swapActive(first); prev != nil {
		t.Fatalf("expected no previous clip, got %v", prev)
	}

	second := &beep.Ctrl{}
	prev := p.swapActive(second)
	if prev != first {
		t.Fatalf("expected the first clip to be displaced")
	}
	if p.active != second {
		t.Fatalf("expected the second clip to be active")
	}
}

func TestPlayRespectsMuteAndLockGates(t *testing.T) {
	muted := false
	p := NewPlayer(func() bool { return muted }, 0.6, zerolog.Nop())

	// Not started: cue dropped, no active clip.
	p.CharTone()
	if p.active != nil {
		t.Fatalf("cue must be dropped before Init")
	}

	// Simulate a started, silent-mode player: still no clips.
	p.started = true
	p.silent = true
	p.Unlock()
	p.LineChime()
	if p.active != nil {
		t.Fatalf("silent mode must not queue clips")
	}

	// Muted is polled per attempt.
	p.silent = false
	muted = true
	p.CharTone()
	if p.active != nil {
		t.Fatalf("muted cue must be dropped")
	}
}
