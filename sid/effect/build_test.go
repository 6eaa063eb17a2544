package effect

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-sid/internal/testutil"
	"github.com/cwbudde/algo-sid/sid/voice"
)

func nan() float64 { return math.NaN() }

func TestBuildChain(t *testing.T) {
	t.Parallel()

	base := voice.NewWith(440, true)
	clock := NewManualClock(0)

	host, err := Build(base, nil, []Params{
		{Type: TypeVibrato, Num: map[string]float64{"frequency": 1, "depth": 10}},
		{Type: TypeGate, Num: map[string]float64{"frequency": 2}},
	}, WithTimeSource(clock.Source()))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	g, ok := host.(*Gate)
	if !ok {
		t.Fatalf("outermost host is %T, want *Gate", host)
	}
	if _, ok := g.Parent().(*Vibrato); !ok {
		t.Fatalf("gate parent is %T, want *Vibrato", g.Parent())
	}

	testutil.RequireNearlyEqual(t, mustFloat(t, host, voice.Frequency), 445, 1e-12)
	if mustFlag(t, host, voice.Gate) {
		t.Fatal("gate should be closed at t=0")
	}

	clock.Set(0.6)
	if !mustFlag(t, host, voice.Gate) {
		t.Fatal("gate should be open at t=0.6")
	}
	testutil.RequireNearlyEqual(t, mustFloat(t, host, voice.Frequency), 440+VibratoOffset(0.6, 1, 10), 1e-12)
}

func TestBuildEmptyChainReturnsBase(t *testing.T) {
	t.Parallel()

	base := voice.New()
	host, err := Build(base, DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if host != voice.Host(base) {
		t.Fatal("empty chain should return base")
	}
}

func TestBuildErrors(t *testing.T) {
	t.Parallel()

	if _, err := Build(nil, nil, nil); err == nil {
		t.Error("expected error for nil base")
	}

	_, err := Build(voice.New(), nil, []Params{{Type: "flanger"}})
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("got %v, want ErrUnknownEffect", err)
	}

	reg := NewRegistry()
	reg.MustRegister("broken", func(voice.Host, Context, Params) (voice.Host, error) {
		return nil, errBoom
	})
	_, err = Build(voice.New(), reg, []Params{{ID: "b1", Type: "broken"}})
	if !errors.Is(err, errBoom) {
		t.Errorf("got %v, want errBoom", err)
	}
}

func TestBuildDefaultsWhenParamsMissing(t *testing.T) {
	t.Parallel()

	host, err := Build(voice.New(), nil, []Params{{Type: TypeVibrato}, {Type: TypeGate}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g := host.(*Gate)
	v := g.Parent().(*Vibrato)

	if tun, _ := g.Local(LocalGateFrequency); tun.IsComputed() {
		t.Error("gate frequency should be literal")
	} else if f, _ := tun.Float(); f != defaultGateFrequency {
		t.Errorf("gate frequency = %v, want %v", f, defaultGateFrequency)
	}
	tun, _ := v.Local(LocalVibratoDepth)
	if f, _ := tun.Float(); f != defaultVibratoDepth {
		t.Errorf("vibrato depth = %v, want %v", f, defaultVibratoDepth)
	}
}
