// Package planlint is the public embedding surface for the plan
// validation engine. It re-exports the engine types so callers can lint
// plans in-process without importing internal packages.
//
//	result, err := planlint.Lint(p, specs, secrets, planlint.Options{AutoFix: true})
//	if err != nil { ... }
//	if result.HasErrors() {
//	    fixed, _ := result.ApplyPatch(p)
//	    ...
//	}
package planlint

import (
	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/fix"
	"github.com/felixgeelhaar/planlint/internal/lint"
	"github.com/felixgeelhaar/planlint/internal/plan"
	"github.com/felixgeelhaar/planlint/internal/report"
	"github.com/felixgeelhaar/planlint/internal/tool"
)

// Core document types.
type (
	Plan = plan.Plan
	Step = plan.Step

	// ToolSpec declares one tool's parameter contract.
	ToolSpec = tool.Spec
	TypeTag  = tool.TypeTag
)

// Engine types.
type (
	Options = lint.Options
	Linter  = lint.Linter
	Result  = lint.Result

	Issue    = diag.Issue
	Code     = diag.Code
	Severity = diag.Severity

	Patch = fix.Patch
	Op    = fix.Op
)

// Diagnostic codes.
const (
	CodeUnknownTool    = diag.CodeUnknownTool
	CodeMissingParam   = diag.CodeMissingParam
	CodeTypeMismatch   = diag.CodeTypeMismatch
	CodeSecretExposure = diag.CodeSecretExposure
	CodeCycle          = diag.CodeCycle
	CodeDanglingEdge   = diag.CodeDanglingEdge
	CodeUnusedOutput   = diag.CodeUnusedOutput

	SeverityError   = diag.SeverityError
	SeverityWarning = diag.SeverityWarning
)

// New builds a reusable Linter from tool specs. The spec list is
// validated once; duplicate names or unknown type tags are rejected here.
func New(specs []ToolSpec, opts Options) (*Linter, error) {
	return lint.New(specs, opts)
}

// Lint validates a plan in one call.
func Lint(p *Plan, specs []ToolSpec, secrets []string, opts Options) (*Result, error) {
	return lint.Lint(p, specs, secrets, opts)
}

// ApplyPatches applies patches to a plan and returns the corrected copy.
// The input plan is never mutated.
func ApplyPatches(p *Plan, patches []*Patch) (*Plan, error) {
	return fix.Apply(p, patches)
}

// LoadPlan reads a plan document from disk (YAML or JSON, strict).
func LoadPlan(path string) (*Plan, error) {
	return plan.Load(path)
}

// LoadToolSpecs reads a tool specs document from disk.
func LoadToolSpecs(path string) ([]ToolSpec, error) {
	return tool.LoadSpecs(path)
}

// ToSARIF renders a result as a SARIF 2.1.0 document.
func ToSARIF(r *Result, artifactURI string) ([]byte, error) {
	return report.ToSARIF(r, artifactURI).ToJSON()
}
