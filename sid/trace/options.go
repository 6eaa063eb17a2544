package trace

import "math"

// Config defines how a trace steps the clock.
type Config struct {
	// SampleRate is the number of reads per simulated second.
	SampleRate float64
	// Start is the clock reading of the first sample, in seconds.
	Start float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 1 kHz sampling starting at t=0.
func DefaultConfig() Config {
	return Config{
		SampleRate: 1000,
	}
}

// WithSampleRate sets the number of reads per simulated second.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithStart sets the clock reading of the first sample.
func WithStart(start float64) Option {
	return func(cfg *Config) {
		if !math.IsNaN(start) && !math.IsInf(start, 0) {
			cfg.Start = start
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// TimeAt returns the clock reading of sample i.
func (c Config) TimeAt(i int) float64 {
	return c.Start + float64(i)/c.SampleRate
}
