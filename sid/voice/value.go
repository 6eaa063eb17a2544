package voice

import (
	"fmt"
	"strconv"
)

// Kind identifies the type held by a Value.
type Kind uint8

const (
	// KindNumber marks a float64 value.
	KindNumber Kind = iota
	// KindBool marks a boolean value.
	KindBool
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a numeric or boolean parameter value. The zero Value is the
// number 0.
type Value struct {
	kind Kind
	num  float64
	flag bool
}

// Number returns a numeric Value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Bool returns a boolean Value.
func Bool(v bool) Value {
	return Value{kind: KindBool, flag: v}
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Float returns the numeric payload.
func (v Value) Float() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("%w: want number, have %s", ErrTypeMismatch, v.kind)
	}
	return v.num, nil
}

// Bool returns the boolean payload.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, fmt.Errorf("%w: want bool, have %s", ErrTypeMismatch, v.kind)
	}
	return v.flag, nil
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindBool {
		return v.flag == o.flag
	}
	return v.num == o.num
}

// String formats the payload.
func (v Value) String() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.flag)
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}
