package effect

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sid/sid/voice"
)

// Proxy wraps a parent host and overlays computed reads on top of it.
//
// The parent is borrowed: the proxy never closes or resets it, and it must
// not be used once the parent is no longer valid. Several proxies may share
// one parent.
type Proxy struct {
	parent voice.Host
	patch  map[string]Producer
	local  map[string]Tunable
}

// NewProxy returns a proxy over parent with no patches and no local state.
// A nil parent panics.
func NewProxy(parent voice.Host) *Proxy {
	if parent == nil {
		panic("effect: nil parent")
	}
	return &Proxy{
		parent: parent,
		patch:  make(map[string]Producer),
		local:  make(map[string]Tunable),
	}
}

// Parent returns the wrapped host.
func (p *Proxy) Parent() voice.Host { return p.parent }

// Get resolves name through the patch table, then the parent chain, then
// local state.
func (p *Proxy) Get(name string) (voice.Value, error) {
	if produce, ok := p.patch[name]; ok {
		return produce()
	}

	v, err := p.parent.Get(name)
	if !errors.Is(err, voice.ErrAttributeNotFound) {
		return v, err
	}

	if t, ok := p.local[name]; ok {
		return t.Resolve()
	}

	return voice.Value{}, fmt.Errorf("%w: %q", voice.ErrAttributeNotFound, name)
}

// Set stores value locally when name is local state and forwards it to the
// parent otherwise. A patched name that is not local is written to the
// parent; the patch keeps shadowing reads.
func (p *Proxy) Set(name string, value voice.Value) error {
	if _, ok := p.local[name]; ok {
		p.local[name] = Literal(value)
		return nil
	}
	return p.parent.Set(name, value)
}

// SetLocal stores t in local state without consulting the parent. A patch
// registered under the same name still wins on read.
func (p *Proxy) SetLocal(name string, t Tunable) {
	p.local[name] = t
}

// Patch registers produce as the read override for name, replacing any
// earlier patch. A nil producer panics.
func (p *Proxy) Patch(name string, produce Producer) {
	if produce == nil {
		panic("effect: nil producer for patch " + name)
	}
	p.patch[name] = produce
}

// Patched reports whether name has a read override.
func (p *Proxy) Patched(name string) bool {
	_, ok := p.patch[name]
	return ok
}

// Local returns the local-state entry for name.
func (p *Proxy) Local(name string) (Tunable, bool) {
	t, ok := p.local[name]
	return t, ok
}

// localFloat resolves a local entry as a number.
func (p *Proxy) localFloat(name string) (float64, error) {
	t, ok := p.local[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", voice.ErrAttributeNotFound, name)
	}
	f, err := t.Float()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}
