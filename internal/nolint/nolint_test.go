package nolint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tt "github.com/gnoverse/treelint/internal/types"
)

func annotated(nolint any, startLine, endLine int) map[string]any {
	return map[string]any{
		"kind":   "ExprStmt",
		"nolint": nolint,
		"loc": map[string]any{
			"start": map[string]any{"line": float64(startLine), "column": 1.0},
			"end":   map[string]any{"line": float64(endLine), "column": 1.0},
		},
	}
}

func TestFromTree(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"kind": "Program",
		"body": []any{
			annotated(true, 3, 5),
			annotated("error-unsafe-regexp, other-rule", 10, 10),
			// no loc, annotation cannot be scoped
			map[string]any{"kind": "ExprStmt", "nolint": true},
			map[string]any{"kind": "ExprStmt"},
		},
	}

	m := FromTree(root)
	assert.Len(t, m.scopes, 2)
}

func TestIsNolint(t *testing.T) {
	t.Parallel()

	root := map[string]any{
		"kind": "Program",
		"body": []any{
			annotated(true, 3, 5),
			annotated("error-unsafe-regexp", 10, 10),
		},
	}
	m := FromTree(root)

	tests := []struct {
		name       string
		line       int
		rule       string
		suppressed bool
	}{
		{"inside blanket scope", 4, "any-rule", true},
		{"scope boundary start", 3, "any-rule", true},
		{"scope boundary end", 5, "any-rule", true},
		{"outside scopes", 7, "any-rule", false},
		{"named rule in scope", 10, "error-unsafe-regexp", true},
		{"other rule in named scope", 10, "other-rule", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := tt.Position{Line: tc.line, Column: 1}
			assert.Equal(t, tc.suppressed, m.IsNolint(pos, tc.rule))
		})
	}

	// Issues without a position are never suppressed.
	assert.False(t, m.IsNolint(tt.Position{}, "any-rule"))
}
