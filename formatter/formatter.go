// Package formatter renders lint issues for terminal and machine output.
package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnoverse/treelint/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgWhite)
)

// issueFormatter renders one issue. Rules with dedicated output shapes
// implement their own; everything else uses the general one.
type issueFormatter interface {
	Format(issue tt.Issue) string
}

var formatters = map[string]issueFormatter{}

func getIssueFormatter(rule string) issueFormatter {
	if f, ok := formatters[rule]; ok {
		return f
	}
	return &generalIssueFormatter{}
}

// GenerateFormattedIssue formats a slice of issues into a human-readable
// string, using the appropriate formatter for each issue's rule.
func GenerateFormattedIssue(issues []tt.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		formatter := getIssueFormatter(issue.Rule)
		builder.WriteString(formatter.Format(issue))
	}
	return builder.String()
}

type generalIssueFormatter struct{}

func (f *generalIssueFormatter) Format(issue tt.Issue) string {
	var builder strings.Builder

	builder.WriteString(severityStyle(issue.Severity).Sprintf("%s: ", issue.Severity))
	builder.WriteString(ruleStyle.Sprint(issue.Rule))
	builder.WriteString("\n")

	builder.WriteString(lineStyle.Sprint(" --> "))
	builder.WriteString(fileStyle.Sprint(issue.Filename))
	if issue.Start.IsValid() {
		builder.WriteString(lineStyle.Sprintf(":%s", issue.Start))
	}
	builder.WriteString("\n")

	builder.WriteString(lineStyle.Sprint("  | "))
	builder.WriteString(messageStyle.Sprint(issue.Message))
	builder.WriteString("\n")

	if issue.Suggestion != "" {
		builder.WriteString(lineStyle.Sprint("  | "))
		builder.WriteString(fmt.Sprintf("suggestion: %s\n", issue.Suggestion))
	}
	if issue.Note != "" {
		builder.WriteString(lineStyle.Sprint("  | "))
		builder.WriteString(fmt.Sprintf("note: %s\n", issue.Note))
	}

	builder.WriteString("\n")
	return builder.String()
}

func severityStyle(severity tt.Severity) *color.Color {
	switch severity {
	case tt.SeverityWarning:
		return warningStyle
	case tt.SeverityInfo:
		return infoStyle
	default:
		return errorStyle
	}
}

// jsonIssue is the machine-readable record emitted per detected violation.
type jsonIssue struct {
	Rule     string      `json:"diagnosticId"`
	Category string      `json:"category,omitempty"`
	Filename string      `json:"filename"`
	Severity string      `json:"severity"`
	Message  string      `json:"message"`
	Start    tt.Position `json:"start"`
	End      tt.Position `json:"end"`
}

// GenerateJSON renders issues grouped by filename as JSON.
func GenerateJSON(issues []tt.Issue) ([]byte, error) {
	grouped := make(map[string][]jsonIssue)
	for _, issue := range issues {
		grouped[issue.Filename] = append(grouped[issue.Filename], jsonIssue{
			Rule:     issue.Rule,
			Category: issue.Category,
			Filename: issue.Filename,
			Severity: issue.Severity.String(),
			Message:  issue.Message,
			Start:    issue.Start,
			End:      issue.End,
		})
	}
	return json.MarshalIndent(grouped, "", "  ")
}
