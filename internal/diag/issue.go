// Package diag defines the diagnostic model shared by the rule engine,
// the patch synthesizer and the report formatters.
package diag

import (
	"strings"

	"github.com/felixgeelhaar/planlint/internal/fix"
)

// Code identifies one lint rule. The enumeration is closed: E-codes are
// errors, W-codes warnings.
type Code string

// Lint rule codes
const (
	CodeUnknownTool    Code = "E001"
	CodeMissingParam   Code = "E002"
	CodeTypeMismatch   Code = "E003"
	CodeSecretExposure Code = "E004"
	CodeCycle          Code = "W001"
	CodeDanglingEdge   Code = "W002"
	CodeUnusedOutput   Code = "W003"
)

// Severity classifies an issue
type Severity string

// Issue severities
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Severity returns the severity implied by the code prefix
func (c Code) Severity() Severity {
	if strings.HasPrefix(string(c), "E") {
		return SeverityError
	}
	return SeverityWarning
}

// Issue is one diagnostic finding
type Issue struct {
	Code     Code       `json:"code"`
	Severity Severity   `json:"severity"`
	StepID   string     `json:"step_id,omitempty"`
	Message  string     `json:"message"`
	Fix      *fix.Patch `json:"suggested_fix,omitempty"`

	// Synthesis context recorded by the producing rule; not serialized.
	Suggestion   string `json:"-"`
	Param        string `json:"-"`
	EdgeTarget   string `json:"-"`
	ExplicitEdge bool   `json:"-"`
}

// New creates an issue with the severity implied by its code
func New(code Code, stepID, message string) Issue {
	return Issue{
		Code:     code,
		Severity: code.Severity(),
		StepID:   stepID,
		Message:  message,
	}
}

// Synthesize returns the mechanical repair for this issue, or nil when no
// unambiguous fix exists. Only three shapes are repairable: an unknown tool
// with a unique suggestion, an exposed secret (the parameter is removed,
// never substituted), and a dangling explicit dependency.
func (i Issue) Synthesize() *fix.Patch {
	switch i.Code {
	case CodeUnknownTool:
		if i.Suggestion != "" {
			return fix.RenameTool(i.StepID, i.Suggestion)
		}
	case CodeSecretExposure:
		if i.Param != "" {
			return fix.RemoveParam(i.StepID, i.Param)
		}
	case CodeDanglingEdge:
		// A dangling reference inside a parameter gets no patch: deleting
		// the parameter would guess at intent.
		if i.ExplicitEdge && i.EdgeTarget != "" {
			return fix.RemoveStepEdge(i.StepID, i.EdgeTarget)
		}
	}
	return nil
}
