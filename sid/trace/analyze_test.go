package trace

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sid/internal/testutil"
	"github.com/cwbudde/algo-sid/sid/effect"
	"github.com/cwbudde/algo-sid/sid/voice"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	s := Summarize([]float64{0, 0, 1, 1, 0, 2})
	if s.Length != 6 || s.Min != 0 || s.Max != 2 || s.Depth != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Transitions != 3 {
		t.Errorf("Transitions = %d, want 3", s.Transitions)
	}
	testutil.RequireNearlyEqual(t, s.Mean, 4.0/6, 1e-12)

	if (Summarize(nil) != Summary{}) {
		t.Error("empty trace should give zero Summary")
	}
}

func TestDominantRateVibrato(t *testing.T) {
	t.Parallel()

	const (
		sampleRate = 1000.0
		lfoHz      = 5.0
	)

	clock := effect.NewManualClock(0)
	v, err := effect.NewVibrato(voice.NewWith(440, true),
		effect.WithVibratoFrequency(2*math.Pi*lfoHz),
		effect.WithVibratoDepth(20),
		effect.WithVibratoTimeSource(clock.Source()))
	if err != nil {
		t.Fatalf("NewVibrato: %v", err)
	}

	samples, err := Sample(v, clock, voice.Frequency, 1000, WithSampleRate(sampleRate))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	rate, err := DominantRate(samples, sampleRate)
	if err != nil {
		t.Fatalf("DominantRate: %v", err)
	}
	testutil.RequireNearlyEqual(t, rate, lfoHz, 0.5)
}

func TestDominantRateGate(t *testing.T) {
	t.Parallel()

	const sampleRate = 1000.0

	clock := effect.NewManualClock(0)
	g, err := effect.NewGate(voice.NewWith(440, true),
		effect.WithGateFrequency(20),
		effect.WithGateTimeSource(clock.Source()))
	if err != nil {
		t.Fatalf("NewGate: %v", err)
	}

	samples, err := Sample(g, clock, voice.Gate, 2000, WithSampleRate(sampleRate))
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}

	// The gate toggles every 1/20 s, so a full period is 1/10 s.
	rate, err := DominantRate(samples, sampleRate)
	if err != nil {
		t.Fatalf("DominantRate: %v", err)
	}
	testutil.RequireNearlyEqual(t, rate, 10, 0.5)
}

func TestDominantRateEdgeCases(t *testing.T) {
	t.Parallel()

	if _, err := DominantRate([]float64{1, 2, 3}, 100); err == nil {
		t.Error("expected error for short trace")
	}
	if _, err := DominantRate(make([]float64, 16), 0); err == nil {
		t.Error("expected error for zero sample rate")
	}

	flat := make([]float64, 64)
	for i := range flat {
		flat[i] = 440
	}
	rate, err := DominantRate(flat, 100)
	if err != nil {
		t.Fatalf("DominantRate: %v", err)
	}
	if rate != 0 {
		t.Errorf("constant trace rate = %v, want 0", rate)
	}
}
