// Package internal provides the core machinery of the tree linting tool.
//
// It coordinates a set of lint rules over externally produced syntax trees
// (serialized as JSON or YAML documents) and collects the issues they
// report.
//
// Key components:
//
// Engine: the main linting engine. It manages a collection of lint rules,
// applies severity and option configuration, and runs the rules against
// loaded trees.
//
// NodeRule: the interface all lint rules implement. Each rule inspects a
// read-only tree via the pattern matcher and returns issues.
//
// Cache: a content-hash keyed result cache so unchanged documents are not
// re-linted.
//
// The actual structural matching lives in the pattern package; suppression
// annotations are handled by the nolint package.
package internal
