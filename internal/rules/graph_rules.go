package rules

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/refs"
)

// cycle reports circular dependencies (W001), one issue per traversed
// component, with the full ordered cycle in the message
type cycle struct{}

func (cycle) Code() diag.Code { return diag.CodeCycle }

func (cycle) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, c := range in.Graph.Cycles() {
		closed := append(append([]string(nil), c...), c[0])
		issues = append(issues, diag.New(diag.CodeCycle, c[0],
			fmt.Sprintf("circular dependency: %s", strings.Join(closed, " -> "))))
	}
	return issues
}

// danglingEdge reports edges whose target names no step in the plan (W002)
type danglingEdge struct{}

func (danglingEdge) Code() diag.Code { return diag.CodeDanglingEdge }

func (danglingEdge) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, edge := range in.Graph.Dangling() {
		var msg string
		if edge.Kind == refs.KindExplicit {
			msg = fmt.Sprintf("depends_on references unknown step %q", edge.To)
		} else {
			msg = fmt.Sprintf("parameter %q references unknown step %q", edge.Param, edge.To)
		}

		issue := diag.New(diag.CodeDanglingEdge, edge.From, msg)
		issue.EdgeTarget = edge.To
		issue.ExplicitEdge = edge.Kind == refs.KindExplicit
		issues = append(issues, issue)
	}
	return issues
}

// unusedOutput reports declared outputs never referenced by another step
// (W003). Conservative: it only fires for tools explicitly declared
// side-effect free; an unknown effect never warns.
type unusedOutput struct{}

func (unusedOutput) Code() diag.Code { return diag.CodeUnusedOutput }

func (unusedOutput) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, step := range in.Plan.Steps {
		spec, ok := in.Registry.Lookup(step.Tool)
		if !ok || !spec.Pure() {
			continue
		}

		referenced := make(map[string]bool)
		for _, field := range in.Graph.ReferencedFields(step.ID) {
			referenced[field] = true
		}

		for _, output := range step.Outputs {
			if !referenced[output] {
				issues = append(issues, diag.New(diag.CodeUnusedOutput, step.ID,
					fmt.Sprintf("output %q is never referenced by another step", output)))
			}
		}
	}
	return issues
}
