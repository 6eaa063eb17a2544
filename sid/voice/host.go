package voice

import "fmt"

// Well-known parameter names.
const (
	Frequency = "frequency"
	Gate      = "gate"
)

// Host is a named-parameter store. Get fails with an error wrapping
// ErrAttributeNotFound when the name is unknown.
type Host interface {
	Get(name string) (Value, error)
	Set(name string, v Value) error
}

// Float reads name from h as a number.
func Float(h Host, name string) (float64, error) {
	v, err := h.Get(name)
	if err != nil {
		return 0, err
	}
	f, err := v.Float()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// Flag reads name from h as a boolean.
func Flag(h Host, name string) (bool, error) {
	v, err := h.Get(name)
	if err != nil {
		return false, err
	}
	b, err := v.Bool()
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
