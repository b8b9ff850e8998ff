package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Configuration errors (CONFIG-001 to CONFIG-099): malformed or
	// self-contradictory caller inputs. These abort a lint call outright.
	ErrCodeConfigDuplicateStep ErrorCode = "CONFIG-001"
	ErrCodeConfigDuplicateTool ErrorCode = "CONFIG-002"
	ErrCodeConfigUnknownType   ErrorCode = "CONFIG-003"

	// Patch errors (PATCH-001 to PATCH-099)
	ErrCodePatchConflict ErrorCode = "PATCH-001"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileNotFound    ErrorCode = "IO-001"
	ErrCodeFileUnmarshal   ErrorCode = "IO-002"
	ErrCodeFileWriteFailed ErrorCode = "IO-003"
	ErrCodeSchemaInvalid   ErrorCode = "IO-004"

	// Lint outcome errors (LINT-001): the plan itself failed validation.
	// Used by the CLI to carry the findings exit status through RunE.
	ErrCodeFindings ErrorCode = "LINT-001"
)

// PlanLintError represents an enhanced error with code and suggestions
type PlanLintError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Cause       error
}

// Error implements the error interface
func (e *PlanLintError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlanLintError) Unwrap() error {
	return e.Cause
}

// New creates a new PlanLintError
func New(code ErrorCode, message string) *PlanLintError {
	return &PlanLintError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlanLintError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlanLintError {
	return &PlanLintError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlanLintError) WithSuggestion(suggestion string) *PlanLintError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// IsConfiguration reports whether err is a configuration error
func IsConfiguration(err error) bool {
	var pe *PlanLintError
	if !errors.As(err, &pe) {
		return false
	}
	return strings.HasPrefix(string(pe.Code), "CONFIG-")
}

// IsFindings reports whether err signals error-severity lint findings
func IsFindings(err error) bool {
	var pe *PlanLintError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrCodeFindings
}

// IsPatchConflict reports whether err is a patch conflict error
func IsPatchConflict(err error) bool {
	var pe *PlanLintError
	if !errors.As(err, &pe) {
		return false
	}
	return pe.Code == ErrCodePatchConflict
}

// Common error constructors for frequently used errors

// NewDuplicateStepError reports two steps sharing an id
func NewDuplicateStepError(stepID string) *PlanLintError {
	return New(ErrCodeConfigDuplicateStep, fmt.Sprintf("duplicate step id %q in plan", stepID)).
		WithSuggestion("Give every step in the plan a unique id")
}

// NewDuplicateToolError reports two tool specs sharing a name
func NewDuplicateToolError(name string) *PlanLintError {
	return New(ErrCodeConfigDuplicateTool, fmt.Sprintf("duplicate tool spec %q", name)).
		WithSuggestion("Remove or rename one of the conflicting tool specs")
}

// NewUnknownTypeError reports an unrecognized parameter type tag
func NewUnknownTypeError(tool, param, tag string) *PlanLintError {
	return New(ErrCodeConfigUnknownType,
		fmt.Sprintf("tool %q declares unknown type %q for parameter %q", tool, tag, param)).
		WithSuggestion("Use one of: string, number, boolean, object, array, any")
}

// NewPatchConflictError reports a patch that no longer applies to the plan
func NewPatchConflictError(details string) *PlanLintError {
	return New(ErrCodePatchConflict, fmt.Sprintf("patch conflict: %s", details)).
		WithSuggestion("Re-lint the plan and synthesize fresh patches")
}
