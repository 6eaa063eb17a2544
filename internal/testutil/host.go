package testutil

import "github.com/cwbudde/algo-sid/sid/voice"

// FixedTime returns a time source stuck at t.
func FixedTime(t float64) func() float64 {
	return func() float64 { return t }
}

// CountingHost wraps a host and counts reads and writes per name.
type CountingHost struct {
	voice.Host
	Gets map[string]int
	Sets map[string]int
}

// NewCountingHost wraps h.
func NewCountingHost(h voice.Host) *CountingHost {
	return &CountingHost{
		Host: h,
		Gets: make(map[string]int),
		Sets: make(map[string]int),
	}
}

// Get counts and forwards the read.
func (c *CountingHost) Get(name string) (voice.Value, error) {
	c.Gets[name]++
	return c.Host.Get(name)
}

// Set counts and forwards the write.
func (c *CountingHost) Set(name string, v voice.Value) error {
	c.Sets[name]++
	return c.Host.Set(name, v)
}
