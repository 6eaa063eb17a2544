package effect

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sid/sid/voice"
)

// BuildOption configures Build.
type BuildOption func(*Context)

// WithTimeSource shares ts between every effect Build creates.
func WithTimeSource(ts TimeSource) BuildOption {
	return func(ctx *Context) {
		if ts != nil {
			ctx.TimeSource = ts
		}
	}
}

// Build wraps base with one effect per node. The first node wraps base
// directly and the last node is the returned outermost host. A nil registry
// uses DefaultRegistry.
func Build(base voice.Host, reg *Registry, nodes []Params, opts ...BuildOption) (voice.Host, error) {
	if base == nil {
		return nil, errors.New("effect: nil base host")
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	var ctx Context
	for _, opt := range opts {
		if opt != nil {
			opt(&ctx)
		}
	}

	host := base
	for i, node := range nodes {
		factory := reg.Lookup(node.Type)
		if factory == nil {
			return nil, fmt.Errorf("effect: node %d: %w: %q", i, ErrUnknownEffect, node.Type)
		}

		next, err := factory(host, ctx, node)
		if err != nil {
			return nil, fmt.Errorf("effect: configure node %d %q: %w", i, node.label(), err)
		}
		host = next
	}

	return host, nil
}
