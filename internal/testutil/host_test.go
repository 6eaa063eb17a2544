package testutil

import (
	"testing"

	"github.com/cwbudde/algo-sid/sid/voice"
)

func TestCountingHost(t *testing.T) {
	t.Parallel()

	h := NewCountingHost(voice.NewWith(440, true))
	if _, err := h.Get(voice.Frequency); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if err := h.Set(voice.Gate, voice.Bool(false)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	if h.Gets[voice.Frequency] != 1 {
		t.Errorf("Gets[frequency] = %d, want 1", h.Gets[voice.Frequency])
	}
	if h.Sets[voice.Gate] != 1 {
		t.Errorf("Sets[gate] = %d, want 1", h.Sets[voice.Gate])
	}
}

func TestFixedTime(t *testing.T) {
	t.Parallel()

	ts := FixedTime(0.25)
	RequireNearlyEqual(t, ts(), 0.25, 0)
	RequireNearlyEqual(t, ts(), 0.25, 0)
}
