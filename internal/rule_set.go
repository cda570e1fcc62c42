package internal

import (
	"fmt"
	"sort"

	"github.com/gnoverse/treelint/internal/lints"
	tt "github.com/gnoverse/treelint/internal/types"
)

/*
* Implement each lint rule as a separate struct
 */

// NodeRule defines the interface for all lint rules run against a target
// tree. The tree is supplied externally and treated as read-only.
type NodeRule interface {
	// Check runs the lint rule on the given tree and returns a slice of Issues.
	Check(filename string, root any) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// OptionsValidator is implemented by rules that check their configuration
// options. Validation failures are configuration errors surfaced at engine
// construction, not at check time.
type OptionsValidator interface {
	ValidateOptions(options map[string]any) error
}

// UnsafeRegexpRule flags RegExp constructions whose pattern argument is not
// a literal.
type UnsafeRegexpRule struct {
	severity tt.Severity
}

func NewUnsafeRegexpRule() NodeRule {
	return &UnsafeRegexpRule{severity: tt.SeverityError}
}

func (r *UnsafeRegexpRule) Check(filename string, root any) ([]tt.Issue, error) {
	return lints.DetectUnsafeRegexp(filename, root, r.severity)
}

func (r *UnsafeRegexpRule) Name() string {
	return lints.UnsafeRegexpRuleID
}

func (r *UnsafeRegexpRule) Severity() tt.Severity     { return r.severity }
func (r *UnsafeRegexpRule) SetSeverity(s tt.Severity) { r.severity = s }

// ValidateOptions rejects every property: the rule declares no configurable
// options, so any key is a configuration error.
func (r *UnsafeRegexpRule) ValidateOptions(options map[string]any) error {
	if len(options) == 0 {
		return nil
	}
	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown option %q for rule %q", keys[0], r.Name())
}
