// Package nolint filters issues suppressed by annotations carried in the
// target tree. A node with a `nolint` field suppresses diagnostics for the
// source lines its `loc` covers: `nolint: true` suppresses every rule,
// `nolint: "rule-a,rule-b"` only the named ones. Nodes without a location
// cannot scope a suppression and are skipped.
package nolint

import (
	"strings"

	"github.com/gnoverse/treelint/internal/tree"
	tt "github.com/gnoverse/treelint/internal/types"
)

const annotationField = "nolint"

// Manager manages suppression scopes and checks if a position is nolinted.
type Manager struct {
	scopes []scope
}

// scope represents a line range where a suppression applies.
type scope struct {
	rules     map[string]struct{} // empty => apply to all lint rules
	startLine int
	endLine   int
}

// FromTree walks the tree and collects every suppression annotation.
func FromTree(root any) *Manager {
	m := &Manager{}
	tree.Walk(root, func(node map[string]any) bool {
		s, ok := parseAnnotation(node)
		if ok {
			m.scopes = append(m.scopes, s)
		}
		return true
	})
	return m
}

func parseAnnotation(node map[string]any) (scope, bool) {
	var s scope

	raw, ok := node[annotationField]
	if !ok {
		return s, false
	}

	start, end := tree.Loc(node)
	if !start.IsValid() {
		return s, false
	}
	s.startLine = start.Line
	s.endLine = end.Line
	if s.endLine < s.startLine {
		s.endLine = s.startLine
	}

	switch v := raw.(type) {
	case bool:
		if !v {
			return s, false
		}
		return s, true
	case string:
		s.rules = parseRuleNames(v)
		return s, true
	}
	return s, false
}

func parseRuleNames(raw string) map[string]struct{} {
	rules := make(map[string]struct{})
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			rules[name] = struct{}{}
		}
	}
	return rules
}

// IsNolint reports whether the given position is inside a suppression scope
// that covers the given rule.
func (m *Manager) IsNolint(pos tt.Position, rule string) bool {
	if m == nil || !pos.IsValid() {
		return false
	}
	for _, s := range m.scopes {
		if pos.Line < s.startLine || pos.Line > s.endLine {
			continue
		}
		if len(s.rules) == 0 {
			return true
		}
		if _, ok := s.rules[rule]; ok {
			return true
		}
	}
	return false
}
