package effect

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cwbudde/algo-sid/sid/voice"
)

// Context carries settings shared by every effect in a chain.
type Context struct {
	// TimeSource, when non-nil, replaces the wall clock of built effects.
	TimeSource TimeSource
}

// Factory wraps parent with one configured effect.
type Factory func(parent voice.Host, ctx Context, p Params) (voice.Host, error)

// Registry maps effect type names to their factories.
type Registry struct {
	factories map[string]Factory
}

var errDuplicateEffect = errors.New("duplicate effect type")

// ErrUnknownEffect is returned when a chain references an unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given effect type.
func (r *Registry) Register(effectType string, factory Factory) error {
	if effectType == "" {
		return errors.New("empty effect type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[effectType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, effectType)
	}

	r.factories[effectType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(effectType string, factory Factory) {
	err := r.Register(effectType, factory)
	if err != nil {
		panic("effect registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect type, or nil.
func (r *Registry) Lookup(effectType string) Factory {
	return r.factories[effectType]
}

// Types returns the registered effect types in sorted order.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Effect type names registered by DefaultRegistry.
const (
	TypeGate    = "gate"
	TypeVibrato = "vibrato"
)

// DefaultRegistry returns a registry holding the built-in effects.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(TypeGate, newGateFromParams)
	r.MustRegister(TypeVibrato, newVibratoFromParams)
	return r
}

func newGateFromParams(parent voice.Host, ctx Context, p Params) (voice.Host, error) {
	opts := []GateOption{WithGateFrequency(p.GetNum("frequency", defaultGateFrequency))}
	if ctx.TimeSource != nil {
		opts = append(opts, WithGateTimeSource(ctx.TimeSource))
	}
	g, err := NewGate(parent, opts...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newVibratoFromParams(parent voice.Host, ctx Context, p Params) (voice.Host, error) {
	opts := []VibratoOption{
		WithVibratoFrequency(p.GetNum("frequency", defaultVibratoFrequency)),
		WithVibratoDepth(p.GetNum("depth", defaultVibratoDepth)),
	}
	if ctx.TimeSource != nil {
		opts = append(opts, WithVibratoTimeSource(ctx.TimeSource))
	}
	v, err := NewVibrato(parent, opts...)
	if err != nil {
		return nil, err
	}
	return v, nil
}
