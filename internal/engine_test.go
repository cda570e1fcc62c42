package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoverse/treelint/internal/lints"
	tt "github.com/gnoverse/treelint/internal/types"
)

const unsafeDoc = `{
	"kind": "Program",
	"body": [{
		"kind": "Call",
		"callee": {"kind": "Id", "name": "RegExp"},
		"args": [{"kind": "Id", "name": "userInput"}],
		"loc": {
			"start": {"line": 2, "column": 1},
			"end": {"line": 2, "column": 25}
		}
	}]
}`

const safeDoc = `{
	"kind": "Program",
	"body": [{
		"kind": "Call",
		"callee": {"kind": "Id", "name": "RegExp"},
		"args": [{"kind": "Literal", "value": "ab"}]
	}]
}`

func TestEngineRunSource(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(unsafeDoc))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, lints.UnsafeRegexpRuleID, issues[0].Rule)

	issues, err = engine.RunSource([]byte(safeDoc))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineRunFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jsonFile := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(unsafeDoc), 0o644))

	yamlFile := filepath.Join(dir, "tree.yaml")
	yamlDoc := `
kind: Call
callee:
  kind: Id
  name: RegExp
args:
  - kind: Id
    name: userInput
`
	require.NoError(t, os.WriteFile(yamlFile, []byte(yamlDoc), 0o644))

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.Run(jsonFile)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, jsonFile, issues[0].Filename)

	issues, err = engine.Run(yamlFile)
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestEngineIgnoreRule(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	engine.IgnoreRule(lints.UnsafeRegexpRuleID)

	issues, err := engine.RunSource([]byte(unsafeDoc))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineSeverityOff(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{
		lints.UnsafeRegexpRuleID: {Severity: tt.SeverityOff},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(unsafeDoc))
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestEngineSeverityApplied(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{
		lints.UnsafeRegexpRuleID: {Severity: tt.SeverityWarning},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(unsafeDoc))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, tt.SeverityWarning, issues[0].Severity)
}

func TestEngineRejectsUnknownOptions(t *testing.T) {
	t.Parallel()

	// The rule declares no options; any property is a configuration error.
	_, err := NewEngine(map[string]tt.ConfigRule{
		lints.UnsafeRegexpRuleID: {
			Severity: tt.SeverityError,
			Options:  map[string]any{"allowLiterals": true},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "allowLiterals"`)
}

func TestEngineUnknownRuleIgnored(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(map[string]tt.ConfigRule{
		"no-such-rule": {Severity: tt.SeverityError},
	})
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(unsafeDoc))
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestEngineNolintSuppression(t *testing.T) {
	t.Parallel()

	doc := `{
		"kind": "Program",
		"body": [{
			"kind": "Call",
			"callee": {"kind": "Id", "name": "RegExp"},
			"args": [{"kind": "Id", "name": "userInput"}],
			"nolint": "error-unsafe-regexp",
			"loc": {
				"start": {"line": 2, "column": 1},
				"end": {"line": 2, "column": 25}
			}
		}]
	}`

	engine, err := NewEngine(nil)
	require.NoError(t, err)

	issues, err := engine.RunSource([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, issues)
}
