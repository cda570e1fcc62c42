package pattern

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Captures accumulates tag to subtree bindings during a match attempt.
//
// A table is owned by the single Match invocation it was handed to and must
// only be trusted after Match reports success: a failed match may leave
// bindings that were written before the failure was detected. There is no
// rollback.
type Captures map[string]any

// NewCaptures returns an empty capture table.
func NewCaptures() Captures { return make(Captures) }

// Value returns the raw value bound under the given tag.
func (c Captures) Value(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// Node returns the binding under the given tag as a structured node.
func (c Captures) Node(name string) (map[string]any, bool) {
	v, ok := c[name]
	if !ok {
		return nil, false
	}
	n, ok := v.(map[string]any)
	return n, ok
}

// List returns the binding under the given tag as a sequence. A capture
// positioned where the target is a sequence binds the entire sequence.
func (c Captures) List(name string) ([]any, bool) {
	v, ok := c[name]
	if !ok {
		return nil, false
	}
	l, ok := v.([]any)
	return l, ok
}

// Names returns the bound tag names in sorted order.
func (c Captures) Names() []string {
	names := maps.Keys(c)
	slices.Sort(names)
	return names
}
