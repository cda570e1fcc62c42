package pattern

// maxDepth bounds the matcher recursion. Target trees are bounded by the
// size of the source they were produced from, but a pathological document
// (deeply nested expressions) must fail closed instead of exhausting the
// call stack.
const maxDepth = 512

// Fielder lets hosts expose struct-backed nodes to the matcher without
// converting them to maps. Field reports the value of a named field and
// whether the node has it.
type Fielder interface {
	Field(name string) (any, bool)
}

// Match reports whether target structurally matches p, writing captured
// subtrees into caps as a side effect.
//
// A structural mismatch is a normal false, never an error. The target is
// never mutated, so concurrent matches with independent capture tables are
// safe. On false, caps may hold bindings written before the mismatch was
// found; callers must only read it after a true result.
func Match(target any, p Pattern, caps Captures) bool {
	return match(target, p, caps, 0)
}

func match(target any, p Pattern, caps Captures, depth int) bool {
	if depth > maxDepth {
		return false
	}

	switch p := p.(type) {
	case *Capture:
		caps[p.Name] = target
		return true

	case *Literal:
		return scalarEqual(target, p.Value)

	case *Sequence:
		seq, ok := target.([]any)
		if !ok || len(seq) != len(p.Elems) {
			return false
		}
		for i, sub := range p.Elems {
			if !match(seq[i], sub, caps, depth+1) {
				// Short-circuit: captures bound by earlier indices stay.
				return false
			}
		}
		return true

	case *Object:
		if !isNode(target) {
			return false
		}
		for _, key := range p.Keys() {
			// An absent field recurses with nil: a capture still binds,
			// anything structural is a normal mismatch.
			if !match(fieldOf(target, key), p.Field(key), caps, depth+1) {
				return false
			}
		}
		return true
	}

	return false
}

func isNode(target any) bool {
	switch target.(type) {
	case map[string]any, Fielder:
		return true
	}
	return false
}

func fieldOf(target any, name string) any {
	switch t := target.(type) {
	case map[string]any:
		return t[name]
	case Fielder:
		v, _ := t.Field(name)
		return v
	}
	return nil
}

// scalarEqual is strict equality with no coercion between scalar kinds.
// Numeric values compare by value across Go numeric representations, since
// a serialized tree carries a single number kind.
func scalarEqual(target, lit any) bool {
	switch lv := lit.(type) {
	case string:
		tv, ok := target.(string)
		return ok && tv == lv
	case bool:
		tv, ok := target.(bool)
		return ok && tv == lv
	default:
		lf, ok := toFloat(lit)
		if !ok {
			return false
		}
		tf, ok := toFloat(target)
		return ok && tf == lf
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
