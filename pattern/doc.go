/*
Package pattern implements a generic structural matcher for syntax trees,
replacing hand-written per-node-kind inspection with declarative pattern
objects.

# Overview

A pattern is a plain data tree shaped like a filtered view of the target
structure the author cares about. Matching walks target and pattern in
lockstep and decides equality modulo wildcards, while extracting named
subtrees ("captures") for the caller.

# Pattern kinds

  - Literal: a concrete scalar (string, number, boolean). Matches only a
    strictly equal scalar at the corresponding target position.

  - Capture: a named wildcard leaf. Matches any value unconditionally and
    binds it under the tag name in the capture table. A capture positioned
    where the target is a sequence captures the entire sequence.

  - Object: subset matching. Every field named in the pattern must match the
    corresponding target field; target fields not named in the pattern are
    never inspected. There is no implicit kind check; narrowing by syntactic
    kind is done by putting a literal on the node's discriminant field.

  - Sequence: positional matching with strict length equality. There is no
    "at least" or "rest" form.

# Usage

	p := pattern.Obj(map[string]pattern.Pattern{
		"callee": pattern.Obj(map[string]pattern.Pattern{
			"kind": pattern.Lit("Id"),
			"name": pattern.Lit("RegExp"),
		}),
		"args": pattern.Cap("args"),
	})

	caps := pattern.NewCaptures()
	if pattern.Match(node, p, caps) {
		args, _ := caps.List("args")
		// inspect args...
	}

Patterns are typically built once at module scope and reused across many
match attempts; capture tables are built fresh per attempt.

# Failure semantics

A structural mismatch, including a target missing an expected field, is a
normal boolean false and never an error. Authoring mistakes (unsupported
literal kinds, duplicate tags) are reported by Validate so rules can fail
fast at startup.
*/
package pattern
