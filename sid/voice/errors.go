package voice

import "errors"

var (
	// ErrAttributeNotFound is returned when a parameter name resolves to nothing.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrTypeMismatch is returned when a value is read or stored as the wrong kind.
	ErrTypeMismatch = errors.New("parameter type mismatch")
)
