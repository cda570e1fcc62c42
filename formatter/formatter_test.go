package formatter

import (
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoverse/treelint/internal/types"
)

func init() {
	// keep expected output stable regardless of terminal detection
	color.NoColor = true
}

func TestGenerateFormattedIssue(t *testing.T) {
	issues := []tt.Issue{
		{
			Rule:     "error-unsafe-regexp",
			Filename: "app.json",
			Severity: tt.SeverityError,
			Message:  "regular expressions should be built from literal pattern strings",
			Start:    tt.Position{Line: 12, Column: 4},
			End:      tt.Position{Line: 12, Column: 30},
		},
	}

	out := GenerateFormattedIssue(issues)
	assert.Contains(t, out, "error: error-unsafe-regexp")
	assert.Contains(t, out, " --> app.json:12:4")
	assert.Contains(t, out, "literal pattern strings")
}

func TestGenerateFormattedIssueWithoutLocation(t *testing.T) {
	issues := []tt.Issue{
		{
			Rule:     "error-unsafe-regexp",
			Filename: "app.json",
			Severity: tt.SeverityWarning,
			Message:  "msg",
		},
	}

	out := GenerateFormattedIssue(issues)
	assert.Contains(t, out, "warning: error-unsafe-regexp")
	assert.Contains(t, out, " --> app.json\n")
}

func TestGenerateJSON(t *testing.T) {
	issues := []tt.Issue{
		{
			Rule:     "error-unsafe-regexp",
			Category: "security",
			Filename: "app.json",
			Severity: tt.SeverityError,
			Message:  "msg",
			Start:    tt.Position{Line: 1, Column: 2},
		},
	}

	data, err := GenerateJSON(issues)
	require.NoError(t, err)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded["app.json"], 1)

	record := decoded["app.json"][0]
	assert.Equal(t, "error-unsafe-regexp", record["diagnosticId"])
	assert.Equal(t, "security", record["category"])
	assert.Equal(t, "error", record["severity"])
}
