package lints

import (
	"github.com/gnoverse/treelint/internal/tree"
	tt "github.com/gnoverse/treelint/internal/types"
	"github.com/gnoverse/treelint/pattern"
)

const (
	// UnsafeRegexpRuleID is the diagnostic identifier emitted by the rule.
	UnsafeRegexpRuleID = "error-unsafe-regexp"

	unsafeRegexpMessage = "regular expressions should be built from literal pattern strings; " +
		"a dynamically built pattern can be attacker-controlled, may trigger catastrophic " +
		"backtracking, and escaping mistakes silently change its meaning"
)

// regexpConstructions match construction expressions whose callee is the
// identifier RegExp, capturing the argument list wholesale. There is one
// pattern per discriminant vocabulary: short documents put the node kind in
// `kind`, ESTree-style documents in `type`. The node's own kind is
// deliberately left unconstrained; narrowing to construction expressions
// happens in the visitor.
var regexpConstructions = []pattern.Pattern{
	pattern.MustValid(pattern.Obj(map[string]pattern.Pattern{
		"callee": pattern.Obj(map[string]pattern.Pattern{
			"kind": pattern.Lit("Id"),
			"name": pattern.Lit("RegExp"),
		}),
		"args": pattern.Cap("args"),
	})),
	pattern.MustValid(pattern.Obj(map[string]pattern.Pattern{
		"callee": pattern.Obj(map[string]pattern.Pattern{
			"type": pattern.Lit("Identifier"),
			"name": pattern.Lit("RegExp"),
		}),
		"args": pattern.Cap("args"),
	})),
}

// DetectUnsafeRegexp reports RegExp constructions whose first argument is
// not a literal. The check is structural: any node of kind Literal passes,
// including non-string literals, so a literal number or array as first
// argument is not flagged.
func DetectUnsafeRegexp(filename string, root any, severity tt.Severity) ([]tt.Issue, error) {
	var issues []tt.Issue
	tree.Walk(root, func(node map[string]any) bool {
		if !isConstructionExpr(node) {
			return true
		}

		caps := pattern.NewCaptures()
		if !matchAnyConstruction(node, caps) {
			return true
		}

		args, ok := caps.List("args")
		if !ok || len(args) == 0 {
			return true
		}
		if first, ok := args[0].(map[string]any); ok && tree.Kind(first) == "Literal" {
			return true
		}

		start, end := tree.Loc(node)
		issues = append(issues, tt.Issue{
			Rule:     UnsafeRegexpRuleID,
			Category: "security",
			Filename: filename,
			Message:  unsafeRegexpMessage,
			Severity: severity,
			Node:     node,
			Start:    start,
			End:      end,
		})
		return true
	})
	return issues, nil
}

// Both `new RegExp(...)` and a bare `RegExp(...)` call construct a regular
// expression. Short and ESTree-style kind names are accepted.
var constructionKinds = map[string]bool{
	"New":            true,
	"Call":           true,
	"NewExpression":  true,
	"CallExpression": true,
}

func isConstructionExpr(node map[string]any) bool {
	return constructionKinds[tree.Kind(node)]
}

func matchAnyConstruction(node map[string]any, caps pattern.Captures) bool {
	for _, p := range regexpConstructions {
		if pattern.Match(node, p, caps) {
			return true
		}
	}
	return false
}
