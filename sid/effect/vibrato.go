package effect

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sid/sid/voice"
)

// Vibrato local-state names.
const (
	LocalVibratoFrequency = "vibrato_frequency"
	LocalVibratoDepth     = "vibrato_depth"
)

const (
	defaultVibratoFrequency = 10.0
	defaultVibratoDepth     = 100.0
)

// VibratoOption mutates vibrato construction parameters.
type VibratoOption func(*vibratoConfig) error

type vibratoConfig struct {
	frequency Tunable
	depth     Tunable
	time      TimeSource
}

func defaultVibratoConfig() vibratoConfig {
	return vibratoConfig{
		frequency: Number(defaultVibratoFrequency),
		depth:     Number(defaultVibratoDepth),
		time:      WallClock,
	}
}

// WithVibratoFrequency sets the LFO rate in radians per second.
func WithVibratoFrequency(rate float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if math.IsNaN(rate) || math.IsInf(rate, 0) {
			return fmt.Errorf("vibrato frequency must be finite: %f", rate)
		}
		cfg.frequency = Number(rate)
		return nil
	}
}

// WithVibratoFrequencyFunc makes the LFO rate follow fn.
func WithVibratoFrequencyFunc(fn func() float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if fn == nil {
			return errors.New("vibrato frequency func must not be nil")
		}
		cfg.frequency = NumberFunc(fn)
		return nil
	}
}

// WithVibratoDepth sets the peak offset added to the base frequency.
func WithVibratoDepth(depth float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if math.IsNaN(depth) || math.IsInf(depth, 0) {
			return fmt.Errorf("vibrato depth must be finite: %f", depth)
		}
		cfg.depth = Number(depth)
		return nil
	}
}

// WithVibratoDepthFunc makes the depth follow fn.
func WithVibratoDepthFunc(fn func() float64) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if fn == nil {
			return errors.New("vibrato depth func must not be nil")
		}
		cfg.depth = NumberFunc(fn)
		return nil
	}
}

// WithVibratoTimeSource replaces the wall clock.
func WithVibratoTimeSource(ts TimeSource) VibratoOption {
	return func(cfg *vibratoConfig) error {
		if ts == nil {
			return errors.New("vibrato time source must not be nil")
		}
		cfg.time = ts
		return nil
	}
}

// Vibrato raises the parent frequency by a sine LFO mapped to [0, depth].
// Writes to frequency set the parent's unmodulated base.
type Vibrato struct {
	*Proxy
}

// NewVibrato wraps parent with a pitch modulator.
func NewVibrato(parent voice.Host, opts ...VibratoOption) (*Vibrato, error) {
	cfg := defaultVibratoConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	v := &Vibrato{Proxy: NewProxy(parent)}
	v.SetLocal(LocalTimeSource, timeTunable(cfg.time))
	v.SetLocal(LocalVibratoFrequency, cfg.frequency)
	v.SetLocal(LocalVibratoDepth, cfg.depth)
	return v, nil
}

// Get returns the modulated frequency and defers every other name to the
// proxy.
func (v *Vibrato) Get(name string) (voice.Value, error) {
	if name == voice.Frequency {
		f, err := v.frequency()
		if err != nil {
			return voice.Value{}, err
		}
		return voice.Number(f), nil
	}
	return v.Proxy.Get(name)
}

// Set forwards frequency straight to the parent and defers every other
// name to the proxy.
func (v *Vibrato) Set(name string, value voice.Value) error {
	if name == voice.Frequency {
		return v.Parent().Set(name, value)
	}
	return v.Proxy.Set(name, value)
}

// SetFrequency replaces the LFO rate.
func (v *Vibrato) SetFrequency(t Tunable) { v.SetLocal(LocalVibratoFrequency, t) }

// SetDepth replaces the modulation depth.
func (v *Vibrato) SetDepth(t Tunable) { v.SetLocal(LocalVibratoDepth, t) }

// SetTimeSource replaces the time source.
func (v *Vibrato) SetTimeSource(ts TimeSource) { v.SetLocal(LocalTimeSource, timeTunable(ts)) }

func (v *Vibrato) frequency() (float64, error) {
	rate, err := v.localFloat(LocalVibratoFrequency)
	if err != nil {
		return 0, err
	}
	depth, err := v.localFloat(LocalVibratoDepth)
	if err != nil {
		return 0, err
	}
	now, err := v.localFloat(LocalTimeSource)
	if err != nil {
		return 0, err
	}

	base, err := voice.Float(v.Parent(), voice.Frequency)
	if err != nil {
		return 0, err
	}
	return base + VibratoOffset(now, rate, depth), nil
}

// VibratoOffset returns ((sin(t*rate)+1)/2)*depth. The offset is unipolar:
// it spans [0, depth] and sits at depth/2 when rate is 0.
func VibratoOffset(t, rate, depth float64) float64 {
	return ((math.Sin(t*rate) + 1) / 2) * depth
}
