package effect

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sid/sid/voice"
)

// Local-state names shared by the time-based effects.
const (
	LocalTimeSource    = "time_source"
	LocalGateFrequency = "gate_frequency"
)

const defaultGateFrequency = 100.0

// GateOption mutates gate construction parameters.
type GateOption func(*gateConfig) error

type gateConfig struct {
	frequency Tunable
	time      TimeSource
}

func defaultGateConfig() gateConfig {
	return gateConfig{
		frequency: Number(defaultGateFrequency),
		time:      WallClock,
	}
}

// WithGateFrequency sets the square-wave rate in Hz.
func WithGateFrequency(hz float64) GateOption {
	return func(cfg *gateConfig) error {
		if math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("gate frequency must be finite: %f", hz)
		}
		cfg.frequency = Number(hz)
		return nil
	}
}

// WithGateFrequencyFunc makes the square-wave rate follow fn.
func WithGateFrequencyFunc(fn func() float64) GateOption {
	return func(cfg *gateConfig) error {
		if fn == nil {
			return errors.New("gate frequency func must not be nil")
		}
		cfg.frequency = NumberFunc(fn)
		return nil
	}
}

// WithGateTimeSource replaces the wall clock.
func WithGateTimeSource(ts TimeSource) GateOption {
	return func(cfg *gateConfig) error {
		if ts == nil {
			return errors.New("gate time source must not be nil")
		}
		cfg.time = ts
		return nil
	}
}

// Gate chops the upstream gate with a 50% duty square wave. The output is
// open only while both the square wave and the parent gate are high.
type Gate struct {
	*Proxy
}

// NewGate wraps parent with a gate modulator.
func NewGate(parent voice.Host, opts ...GateOption) (*Gate, error) {
	cfg := defaultGateConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	g := &Gate{Proxy: NewProxy(parent)}
	g.SetLocal(LocalTimeSource, timeTunable(cfg.time))
	g.SetLocal(LocalGateFrequency, cfg.frequency)
	g.Patch(voice.Gate, g.gate)
	return g, nil
}

// SetFrequency replaces the square-wave rate.
func (g *Gate) SetFrequency(t Tunable) { g.SetLocal(LocalGateFrequency, t) }

// SetTimeSource replaces the time source.
func (g *Gate) SetTimeSource(ts TimeSource) { g.SetLocal(LocalTimeSource, timeTunable(ts)) }

func (g *Gate) gate() (voice.Value, error) {
	rate, err := g.localFloat(LocalGateFrequency)
	if err != nil {
		return voice.Value{}, err
	}
	now, err := g.localFloat(LocalTimeSource)
	if err != nil {
		return voice.Value{}, err
	}

	if !SquareHigh(now, rate) {
		return voice.Bool(false), nil
	}

	open, err := voice.Flag(g.Parent(), voice.Gate)
	if err != nil {
		return voice.Value{}, err
	}
	return voice.Bool(open), nil
}

// SquareHigh reports whether floor(t*rate) is odd, i.e. whether a square
// wave toggling every 1/rate seconds is in its high half.
func SquareHigh(t, rate float64) bool {
	phase := math.Floor(t * rate)
	if math.IsNaN(phase) || math.IsInf(phase, 0) {
		return false
	}
	m := math.Mod(phase, 2)
	if m < 0 {
		m += 2
	}
	return m == 1
}
