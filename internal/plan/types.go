// Package plan defines the execution-plan data model the linter operates on.
//
// A Plan is an ordered sequence of Steps. Step order is significant only as
// a tie-break for diagnostic ordering; execution dependencies are derived
// from depends_on entries and from ${step.output} references inside
// parameter values, never from position.
package plan

import (
	"github.com/felixgeelhaar/planlint/internal/errors"
)

// Plan represents an agent execution plan
type Plan struct {
	Steps []Step `json:"steps" yaml:"steps" jsonschema:"required"`
}

// Step represents a single planned tool invocation
type Step struct {
	ID        string         `json:"id" yaml:"id" jsonschema:"required"`
	Tool      string         `json:"tool" yaml:"tool" jsonschema:"required"`
	Params    map[string]any `json:"params,omitempty" yaml:"params,omitempty"`
	DependsOn []string       `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	Outputs   []string       `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Find returns the step with the given id, or nil
func (p *Plan) Find(id string) *Step {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return &p.Steps[i]
		}
	}
	return nil
}

// Index returns the position of the step with the given id, or -1
func (p *Plan) Index(id string) int {
	for i := range p.Steps {
		if p.Steps[i].ID == id {
			return i
		}
	}
	return -1
}

// CheckIDs verifies that step identifiers are unique within the plan.
// A violation is a caller programming error, not a plan-quality finding.
func (p *Plan) CheckIDs() error {
	seen := make(map[string]bool, len(p.Steps))
	for _, step := range p.Steps {
		if seen[step.ID] {
			return errors.NewDuplicateStepError(step.ID)
		}
		seen[step.ID] = true
	}
	return nil
}

// Clone returns a deep copy of the plan. Patch application works on clones
// so the caller's plan value is never mutated.
func (p *Plan) Clone() *Plan {
	out := &Plan{Steps: make([]Step, len(p.Steps))}
	for i, step := range p.Steps {
		out.Steps[i] = Step{
			ID:        step.ID,
			Tool:      step.Tool,
			Params:    cloneParams(step.Params),
			DependsOn: append([]string(nil), step.DependsOn...),
			Outputs:   append([]string(nil), step.Outputs...),
		}
	}
	return out
}

func cloneParams(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue deep-copies a parameter value tree of maps, slices and scalars
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = cloneValue(e)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = cloneValue(e)
		}
		return s
	default:
		return val
	}
}
