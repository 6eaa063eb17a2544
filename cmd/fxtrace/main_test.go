package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sid/sid/effect"
)

func TestDecodeChain(t *testing.T) {
	t.Parallel()

	const doc = `
voice:
  frequency: 261.6
  gate: true
effects:
  - type: Vibrato
    params: {frequency: 6.28, depth: 20}
  - id: chop
    type: gate
    params:
      frequency: 8
`
	cfg, err := decodeChain(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("decodeChain: %v", err)
	}

	if cfg.Voice.Frequency == nil || *cfg.Voice.Frequency != 261.6 {
		t.Errorf("voice frequency = %v", cfg.Voice.Frequency)
	}
	if cfg.Voice.Gate == nil || !*cfg.Voice.Gate {
		t.Errorf("voice gate = %v", cfg.Voice.Gate)
	}

	want := []effect.Params{
		{Type: effect.TypeVibrato, Num: map[string]float64{"frequency": 6.28, "depth": 20}},
		{ID: "chop", Type: effect.TypeGate, Num: map[string]float64{"frequency": 8}},
	}
	if !reflect.DeepEqual(cfg.Effects, want) {
		t.Errorf("effects = %+v, want %+v", cfg.Effects, want)
	}
}

func TestDecodeChainErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"missing type":  "effects:\n  - params: {depth: 1}\n",
		"unknown field": "voices: {}\n",
		"bad yaml":      "effects: [\n",
	}
	for name, doc := range tests {
		if _, err := decodeChain(strings.NewReader(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	if _, err := decodeChain(strings.NewReader("")); err != nil {
		t.Errorf("empty document: %v", err)
	}
}

func TestEffectsFromFlags(t *testing.T) {
	t.Parallel()

	got := effectsFromFlags(" Vibrato, ,gate,flanger", 5, 7, 9)
	want := []effect.Params{
		{Type: effect.TypeVibrato, Num: map[string]float64{"frequency": 5, "depth": 7}},
		{Type: effect.TypeGate, Num: map[string]float64{"frequency": 9}},
		{Type: "flanger"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRowIndices(t *testing.T) {
	t.Parallel()

	if got := rowIndices(10, 4); !reflect.DeepEqual(got, []int{0, 2, 5, 7}) {
		t.Errorf("rowIndices(10, 4) = %v", got)
	}
	if got := rowIndices(3, 10); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("rowIndices(3, 10) = %v", got)
	}
	if rowIndices(0, 4) != nil {
		t.Error("empty trace should have no rows")
	}
}
