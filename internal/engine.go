package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gnoverse/treelint/internal/lints"
	"github.com/gnoverse/treelint/internal/nolint"
	"github.com/gnoverse/treelint/internal/tree"
	tt "github.com/gnoverse/treelint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	rules        map[string]NodeRule
}

// NewEngine creates a new lint engine with the default rules, adjusted by
// the given per-rule configuration.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

// Define the ruleConstructor type
type ruleConstructor func() NodeRule

// Define the ruleMap type
type ruleMap map[string]ruleConstructor

// Create a map to hold the mappings of rule names to their constructors
var allRuleConstructors = ruleMap{
	lints.UnsafeRegexpRuleID: NewUnsafeRegexpRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]NodeRule)
	e.registerDefaultRules()

	// Iterate over the rules and apply severity and options
	for key, cfg := range rules {
		r := e.findRule(key)
		if r == nil {
			newRuleCstr := allRuleConstructors[key]
			if newRuleCstr == nil {
				// Unknown rule, continue to the next one
				continue
			}
			r = newRuleCstr()
			e.rules[key] = r
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
		}
		r.SetSeverity(cfg.Severity)

		if v, ok := r.(OptionsValidator); ok {
			if err := v.ValidateOptions(cfg.Options); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
		} else if len(cfg.Options) > 0 {
			return fmt.Errorf("invalid configuration: rule %q accepts no options", key)
		}
	}
	return nil
}

func (e *Engine) registerDefaultRules() {
	for key, newRuleCstr := range allRuleConstructors {
		newRule := newRuleCstr()
		if newRule.Severity() != tt.SeverityOff {
			e.rules[key] = newRule
		}
	}
}

func (e *Engine) findRule(name string) NodeRule {
	if rule, ok := e.rules[name]; ok {
		return rule
	}
	return nil
}

// AddRule registers a custom rule with the engine.
func (e *Engine) AddRule(rule NodeRule) {
	e.rules[rule.Name()] = rule
}

// IgnoreRule disables the named rule for subsequent runs.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Run loads the tree document at filename and applies all lint rules to it.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading tree document: %w", err)
	}

	root, err := decodeByExtension(filename, data)
	if err != nil {
		return nil, err
	}

	return e.RunTree(filename, root)
}

// RunSource applies all lint rules to a JSON tree document held in memory.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	root, err := tree.FromJSON(source)
	if err != nil {
		return nil, fmt.Errorf("error parsing content: %w", err)
	}
	return e.RunTree("", root)
}

// RunTree applies all lint rules to an already loaded tree and returns a
// slice of Issues. The tree is only read, so rules run concurrently.
func (e *Engine) RunTree(filename string, root any) ([]tt.Issue, error) {
	suppressions := nolint.FromTree(root)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		wg.Add(1)
		go func(r NodeRule) {
			defer wg.Done()
			if e.ignoredRules[r.Name()] {
				return
			}
			issues, err := r.Check(filename, root)
			if err != nil {
				return
			}

			nolinted := filterNolintIssues(suppressions, issues)

			mu.Lock()
			allIssues = append(allIssues, nolinted...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	return allIssues, nil
}

func decodeByExtension(filename string, data []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return tree.FromYAML(data)
	default:
		return tree.FromJSON(data)
	}
}

// filterNolintIssues filters issues based on suppression annotations.
func filterNolintIssues(mgr *nolint.Manager, issues []tt.Issue) []tt.Issue {
	if mgr == nil {
		return issues
	}
	filtered := make([]tt.Issue, 0, len(issues))
	for _, issue := range issues {
		if !mgr.IsNolint(issue.Start, issue.Rule) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
