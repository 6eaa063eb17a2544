package effect

import (
	"math"
	"sync"
	"time"
)

// TimeSource returns elapsed time in seconds. Successive calls must not
// decrease.
type TimeSource func() float64

// WallClock returns the current Unix time in seconds.
func WallClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// NewClock returns a monotonic TimeSource that reads 0 at creation.
func NewClock() TimeSource {
	start := time.Now()
	return func() float64 {
		return time.Since(start).Seconds()
	}
}

// ManualClock is a TimeSource driven explicitly by the caller. It is safe
// for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now float64
}

// NewManualClock returns a clock that reads start.
func NewManualClock(start float64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t. Callers that rewind the clock are responsible
// for readers that expect non-decreasing time. NaN is ignored.
func (c *ManualClock) Set(t float64) {
	if math.IsNaN(t) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d seconds. Negative d is ignored.
func (c *ManualClock) Advance(d float64) {
	if !(d > 0) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += d
}

// Source returns the clock as a TimeSource.
func (c *ManualClock) Source() TimeSource {
	return c.Now
}

// timeTunable wraps a TimeSource as a local-state entry.
func timeTunable(ts TimeSource) Tunable {
	return NumberFunc(ts)
}
