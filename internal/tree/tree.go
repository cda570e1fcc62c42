// Package tree loads and traverses externally produced syntax trees.
//
// The core matcher makes no assumption about where a tree came from; this
// package supplies the host-side collaborators around it: decoding
// serialized documents into the canonical map/slice shape, walking every
// node, and reading the conventional discriminant and location fields.
package tree

import (
	"sort"

	"github.com/gnoverse/treelint/internal/types"
)

// Kind returns the node's discriminant field. Documents use either `kind`
// or the ESTree-style `type`; the former wins when both are present.
func Kind(node map[string]any) string {
	if k, ok := node["kind"].(string); ok {
		return k
	}
	if k, ok := node["type"].(string); ok {
		return k
	}
	return ""
}

// Loc extracts the node's source location from its `loc` field, if any.
func Loc(node map[string]any) (start, end types.Position) {
	loc, ok := node["loc"].(map[string]any)
	if !ok {
		return
	}
	return position(loc["start"]), position(loc["end"])
}

func position(v any) types.Position {
	m, ok := v.(map[string]any)
	if !ok {
		return types.Position{}
	}
	return types.Position{
		Line:   intField(m, "line"),
		Column: intField(m, "column"),
	}
}

func intField(m map[string]any, key string) int {
	switch n := m[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Walk traverses root in depth-first pre-order, invoking visit for every
// structured node. Returning false from visit prunes that node's subtree.
// Child fields are visited in sorted name order so traversal is
// deterministic.
func Walk(root any, visit func(node map[string]any) bool) {
	switch n := root.(type) {
	case map[string]any:
		if !visit(n) {
			return
		}
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			Walk(n[k], visit)
		}
	case []any:
		for _, el := range n {
			Walk(el, visit)
		}
	}
}
