package trace

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Summary holds basic statistics of a trace.
type Summary struct {
	Length      int
	Min         float64
	Max         float64
	Mean        float64
	Depth       float64 // Max - Min
	Transitions int     // number of i where x[i] != x[i-1]
}

// Summarize computes a Summary in one pass. An empty trace yields the zero
// Summary.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	s := Summary{
		Length: len(samples),
		Min:    samples[0],
		Max:    samples[0],
	}

	sum := 0.0
	for i, x := range samples {
		sum += x
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
		if i > 0 && x != samples[i-1] {
			s.Transitions++
		}
	}

	s.Mean = sum / float64(len(samples))
	s.Depth = s.Max - s.Min

	return s
}

var errShortTrace = errors.New("trace: need at least 4 samples")

// DominantRate estimates the strongest periodic component of samples in Hz.
//
// The trace is mean-removed, Hann-windowed and zero-padded to a power of two
// before the FFT. The peak bin is refined by parabolic interpolation. A
// constant trace returns 0.
func DominantRate(samples []float64, sampleRate float64) (float64, error) {
	n := len(samples)
	if n < 4 {
		return 0, errShortTrace
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("trace: sample rate must be > 0 and finite: %f", sampleRate)
	}

	mean := Summarize(samples).Mean
	buf := make([]float64, n)
	for i, x := range samples {
		buf[i] = x - mean
	}
	vecmath.MulBlockInPlace(buf, hann(n))

	size := nextPowerOfTwo(n)
	in := make([]complex128, size)
	for i, x := range buf {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("trace: fft plan: %w", err)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("trace: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	peak := 1
	for k := 2; k < bins; k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}
	if power[peak] <= 1e-18 {
		return 0, nil
	}

	pos := float64(peak)
	if peak+1 < bins {
		a, b, c := power[peak-1], power[peak], power[peak+1]
		if den := a - 2*b + c; den != 0 {
			pos += 0.5 * (a - c) / den
		}
	}

	return pos * sampleRate / float64(size), nil
}

// hann returns a symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
