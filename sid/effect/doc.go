// Package effect provides chainable parameter modulation for voices.
//
// A [Proxy] wraps a parent [voice.Host] and resolves reads in a fixed order:
// the patch table first, then the parent, then the proxy's local state.
// Writes go to local state when the name is stored there and to the parent
// otherwise, so patches never intercept writes.
//
// Included effects:
//   - Gate: square-wave gate ANDed with the upstream gate.
//   - Vibrato: unipolar sinusoidal offset added to the upstream frequency.
//
// Effects are evaluated on demand against a [TimeSource]; nothing is cached
// and nothing runs in the background. Proxies are not safe for concurrent
// use.
package effect
