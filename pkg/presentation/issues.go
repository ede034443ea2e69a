package presentation

import (
	"fmt"
	"strings"

	"github.com/christophe-duc/lazyts/pkg/catalog"
	"github.com/christophe-duc/lazyts/pkg/i18n"
	"github.com/samber/lo"
)

// IssueCounts tallies issues by severity
type IssueCounts struct {
	Errors   int
	Warnings int
}

// CountIssues tallies issues by severity
func CountIssues(issues []catalog.Issue) IssueCounts {
	return IssueCounts{
		Errors: lo.CountBy(issues, func(issue catalog.Issue) bool {
			return issue.Severity == catalog.Error
		}),
		Warnings: lo.CountBy(issues, func(issue catalog.Issue) bool {
			return issue.Severity == catalog.Warning
		}),
	}
}

// RenderIssue shows one issue on one line, e.g.
// MEGASyncStrings_ka.ts: error [placeholders] InfoDialog "%1 of %2": missing %2
func RenderIssue(theme *Theme, path string, issue catalog.Issue) string {
	location := issue.Context
	if issue.Source != "" {
		location += " " + fmt.Sprintf("%q", issue.Source)
	}

	line := fmt.Sprintf("%s: %s [%s]", path, theme.Severity(issue.Severity, issue.Severity.String()), issue.Kind)
	if location != "" {
		line += " " + location
	}
	if issue.Detail != "" {
		line += ": " + issue.Detail
	}
	return line
}

// RenderIssues shows every issue of a file followed by a summary line
func RenderIssues(theme *Theme, tr *i18n.TranslationSet, path string, issues []catalog.Issue) string {
	if len(issues) == 0 {
		return fmt.Sprintf(tr.NoIssues, path)
	}

	lines := lo.Map(issues, func(issue catalog.Issue, _ int) string {
		return RenderIssue(theme, path, issue)
	})
	counts := CountIssues(issues)
	lines = append(lines, fmt.Sprintf(tr.IssueSummary, path, counts.Errors, counts.Warnings))
	return strings.Join(lines, "\n")
}
