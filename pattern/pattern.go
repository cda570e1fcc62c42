package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// NodeType defines the different pattern node kinds.
type NodeType int

const (
	NodeLiteral  NodeType = iota // concrete scalar value
	NodeCapture                  // named wildcard, binds the matched value
	NodeObject                   // subset matching on named fields
	NodeSequence                 // positional, length-strict element matching
)

func (t NodeType) String() string {
	switch t {
	case NodeLiteral:
		return "literal"
	case NodeCapture:
		return "capture"
	case NodeObject:
		return "object"
	case NodeSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Pattern is a declarative description of the tree shape a target node must
// have, plus the capture points to extract from it. Patterns are immutable
// after construction and safe to share across concurrent match attempts.
type Pattern interface {
	Type() NodeType // returns the pattern node kind
	String() string // debugging or printing purpose
}

var (
	_ Pattern = (*Literal)(nil)
	_ Pattern = (*Capture)(nil)
	_ Pattern = (*Object)(nil)
	_ Pattern = (*Sequence)(nil)
)

// Literal matches a scalar that is strictly equal to Value.
// Supported value kinds are strings, booleans and numbers.
type Literal struct {
	Value any
}

// Lit constructs a literal pattern.
func Lit(value any) *Literal { return &Literal{Value: value} }

func (l *Literal) Type() NodeType { return NodeLiteral }
func (l *Literal) String() string { return fmt.Sprintf("Literal(%#v)", l.Value) }

// Capture is a named placeholder that matches any target value and records
// it in the capture table under Name. A capture is always a leaf; it cannot
// constrain the shape of what it binds.
type Capture struct {
	Name string
}

// Cap constructs a capture pattern with the given tag name.
func Cap(name string) *Capture { return &Capture{Name: name} }

func (c *Capture) Type() NodeType { return NodeCapture }
func (c *Capture) String() string { return fmt.Sprintf("Capture(%s)", c.Name) }

// Object matches a structured node by a subset of its fields: every field
// named in the pattern must recursively match, fields present on the target
// but absent from the pattern are ignored.
//
// Field traversal order is the sorted key order, so capture writes are
// deterministic even when a tag name is reused.
type Object struct {
	keys   []string
	fields map[string]Pattern
}

// Obj constructs an object pattern from a field map.
func Obj(fields map[string]Pattern) *Object {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Object{keys: keys, fields: fields}
}

func (o *Object) Type() NodeType { return NodeObject }

// Keys returns the pattern's field names in traversal order.
func (o *Object) Keys() []string { return o.keys }

// Field returns the sub-pattern for the given field name.
func (o *Object) Field(name string) Pattern { return o.fields[name] }

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteString("Object{")
	for i, k := range o.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %s", k, o.fields[k])
	}
	sb.WriteString("}")
	return sb.String()
}

// Sequence matches an ordered list of sub-nodes position by position.
// The target sequence must have exactly len(Elems) elements.
type Sequence struct {
	Elems []Pattern
}

// Seq constructs a sequence pattern.
func Seq(elems ...Pattern) *Sequence { return &Sequence{Elems: elems} }

func (s *Sequence) Type() NodeType { return NodeSequence }

func (s *Sequence) String() string {
	parts := make([]string, len(s.Elems))
	for i, e := range s.Elems {
		parts[i] = e.String()
	}
	return "Sequence[" + strings.Join(parts, ", ") + "]"
}

// MustValid returns p after validating it and panics on authoring errors.
// Intended for module-scope pattern construction, in the same spirit as
// regexp.MustCompile: a bad pattern is a programming defect that should
// surface at startup, not degrade silently at match time.
func MustValid(p Pattern) Pattern {
	if err := Validate(p); err != nil {
		panic(fmt.Sprintf("pattern: invalid pattern: %v", err))
	}
	return p
}

// Validate walks the pattern and reports authoring errors: nil sub-patterns,
// literals of an unsupported kind, and capture tags that occur more than
// once. Duplicate tags are legal at match time (the last write in traversal
// order wins) but almost always an authoring mistake, so rule authors are
// expected to call Validate once at startup and fail loudly.
func Validate(p Pattern) error {
	seen := make(map[string]bool)
	return validate(p, seen)
}

func validate(p Pattern, seen map[string]bool) error {
	switch p := p.(type) {
	case nil:
		return fmt.Errorf("nil pattern")
	case *Literal:
		if !isSupportedScalar(p.Value) {
			return fmt.Errorf("unsupported literal kind %T", p.Value)
		}
	case *Capture:
		if p.Name == "" {
			return fmt.Errorf("capture with empty tag name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate capture tag %q", p.Name)
		}
		seen[p.Name] = true
	case *Object:
		for _, k := range p.keys {
			if err := validate(p.fields[k], seen); err != nil {
				return fmt.Errorf("field %q: %w", k, err)
			}
		}
	case *Sequence:
		for i, e := range p.Elems {
			if err := validate(e, seen); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unknown pattern kind %T", p)
	}
	return nil
}

func isSupportedScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
