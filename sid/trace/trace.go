package trace

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sid/sid/effect"
	"github.com/cwbudde/algo-sid/sid/voice"
)

// Sample reads name from host n times, moving clock to Config.TimeAt(i)
// before read i. Numbers are recorded as-is and booleans as 0 or 1. The
// effects under host must use clock as their time source.
func Sample(host voice.Host, clock *effect.ManualClock, name string, n int, opts ...Option) ([]float64, error) {
	if host == nil {
		return nil, errors.New("trace: nil host")
	}
	if clock == nil {
		return nil, errors.New("trace: nil clock")
	}
	if n <= 0 {
		return nil, fmt.Errorf("trace: sample count must be > 0: %d", n)
	}

	cfg := ApplyOptions(opts...)
	out := make([]float64, n)
	for i := range out {
		clock.Set(cfg.TimeAt(i))

		v, err := host.Get(name)
		if err != nil {
			return nil, fmt.Errorf("trace: sample %d: %w", i, err)
		}
		out[i] = toFloat(v)
	}

	return out, nil
}

func toFloat(v voice.Value) float64 {
	if v.Kind() == voice.KindBool {
		if b, _ := v.Bool(); b {
			return 1
		}
		return 0
	}
	f, _ := v.Float()
	return f
}
