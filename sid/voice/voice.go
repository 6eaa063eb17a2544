package voice

import (
	"fmt"
	"sort"
)

// Voice is an in-memory Host for one oscillator voice. Frequency and Gate
// are typed built-ins; any other name may be created by Set.
//
// Voice is not safe for concurrent use.
type Voice struct {
	frequency float64
	gate      bool
	extra     map[string]Value
}

// New returns a voice at frequency 0 with the gate closed.
func New() *Voice {
	return &Voice{extra: make(map[string]Value)}
}

// NewWith returns a voice with the given frequency and gate.
func NewWith(frequency float64, gate bool) *Voice {
	v := New()
	v.frequency = frequency
	v.gate = gate
	return v
}

// Get implements Host.
func (v *Voice) Get(name string) (Value, error) {
	switch name {
	case Frequency:
		return Number(v.frequency), nil
	case Gate:
		return Bool(v.gate), nil
	}

	if val, ok := v.extra[name]; ok {
		return val, nil
	}

	return Value{}, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
}

// Set implements Host. Built-in parameters keep their kind; other names
// are created on first write.
func (v *Voice) Set(name string, val Value) error {
	switch name {
	case Frequency:
		f, err := val.Float()
		if err != nil {
			return fmt.Errorf("voice: set %s: %w", name, err)
		}
		v.frequency = f
		return nil
	case Gate:
		b, err := val.Bool()
		if err != nil {
			return fmt.Errorf("voice: set %s: %w", name, err)
		}
		v.gate = b
		return nil
	}

	if v.extra == nil {
		v.extra = make(map[string]Value)
	}
	v.extra[name] = val
	return nil
}

// Frequency returns the stored oscillator frequency.
func (v *Voice) Frequency() float64 { return v.frequency }

// GateOpen reports the stored gate state.
func (v *Voice) GateOpen() bool { return v.gate }

// Names returns every defined parameter name in sorted order.
func (v *Voice) Names() []string {
	names := make([]string, 0, len(v.extra)+2)
	names = append(names, Frequency, Gate)
	for name := range v.extra {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
