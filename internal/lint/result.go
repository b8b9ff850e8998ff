package lint

import (
	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/fix"
	"github.com/felixgeelhaar/planlint/internal/plan"
)

// Result holds the ordered findings of one lint invocation. It is owned by
// the caller; the engine retains no reference after returning it.
type Result struct {
	Issues []diag.Issue `json:"issues"`
}

// HasErrors reports whether any Error-severity issue is present
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == diag.SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any Warning-severity issue is present
func (r *Result) HasWarnings() bool {
	for _, issue := range r.Issues {
		if issue.Severity == diag.SeverityWarning {
			return true
		}
	}
	return false
}

// Patches returns the synthesizable repairs for the findings, in issue
// order. Issues without a mechanical fix contribute nothing.
func (r *Result) Patches() []*fix.Patch {
	var patches []*fix.Patch
	for _, issue := range r.Issues {
		patch := issue.Fix
		if patch == nil {
			patch = issue.Synthesize()
		}
		if !patch.IsEmpty() {
			patches = append(patches, patch)
		}
	}
	return patches
}

// ApplyPatch applies every synthesizable repair to the plan and returns
// the corrected copy; the input plan is never mutated.
func (r *Result) ApplyPatch(p *plan.Plan) (*plan.Plan, error) {
	return fix.Apply(p, r.Patches())
}
