package lint

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/planlint/internal/diag"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Render produces the human-readable listing of the findings
func (r *Result) Render(noColor bool) string {
	style := func(s lipgloss.Style, text string) string {
		if noColor {
			return text
		}
		return s.Render(text)
	}

	if len(r.Issues) == 0 {
		return style(okStyle, "✓") + " no issues found\n"
	}

	var b strings.Builder
	errorCount := 0
	warningCount := 0
	fixable := 0

	for _, issue := range r.Issues {
		marker := style(warningStyle, "⚠")
		if issue.Severity == diag.SeverityError {
			marker = style(errorStyle, "✗")
			errorCount++
		} else {
			warningCount++
		}

		location := issue.StepID
		if location == "" {
			location = "plan"
		}

		fmt.Fprintf(&b, "%s %s: %s %s\n", marker, location, style(dimStyle, string(issue.Code)), issue.Message)

		if issue.Fix != nil || issue.Synthesize() != nil {
			fixable++
		}
	}

	fmt.Fprintf(&b, "\nfound %d errors, %d warnings\n", errorCount, warningCount)
	if fixable > 0 {
		fmt.Fprintf(&b, "%d issues have suggested fixes; rerun with --fix to apply them\n", fixable)
	}

	return b.String()
}
