package effect

import "github.com/cwbudde/algo-sid/sid/voice"

// Producer computes a parameter value on demand.
type Producer func() (voice.Value, error)

// Tunable is a local-state value that is either a fixed literal or computed
// each time it is resolved.
type Tunable struct {
	literal voice.Value
	compute Producer
}

// Literal returns a Tunable fixed to v.
func Literal(v voice.Value) Tunable {
	return Tunable{literal: v}
}

// Computed returns a Tunable that calls fn on every Resolve. A nil fn
// panics.
func Computed(fn Producer) Tunable {
	if fn == nil {
		panic("effect: nil producer")
	}
	return Tunable{compute: fn}
}

// Number returns a literal numeric Tunable.
func Number(f float64) Tunable {
	return Literal(voice.Number(f))
}

// NumberFunc returns a numeric Tunable backed by fn. A nil fn panics.
func NumberFunc(fn func() float64) Tunable {
	if fn == nil {
		panic("effect: nil number func")
	}
	return Tunable{compute: func() (voice.Value, error) {
		return voice.Number(fn()), nil
	}}
}

// IsComputed reports whether t is the computed variant.
func (t Tunable) IsComputed() bool { return t.compute != nil }

// Resolve returns the literal or invokes the producer.
func (t Tunable) Resolve() (voice.Value, error) {
	switch {
	case t.compute != nil:
		return t.compute()
	default:
		return t.literal, nil
	}
}

// Float resolves t and reads the result as a number.
func (t Tunable) Float() (float64, error) {
	v, err := t.Resolve()
	if err != nil {
		return 0, err
	}
	return v.Float()
}
