package fix

import (
	"fmt"

	"github.com/felixgeelhaar/planlint/internal/errors"
	"github.com/felixgeelhaar/planlint/internal/plan"
)

// Apply applies patches in the order supplied and returns a new plan; the
// input plan is never mutated. Re-applying an already-applied operation is
// a no-op, so Apply is idempotent. An operation addressing a step that no
// longer exists fails the whole call with a patch conflict, leaving the
// input untouched.
func Apply(p *plan.Plan, patches []*Patch) (*plan.Plan, error) {
	out := p.Clone()

	for _, patch := range patches {
		if patch == nil {
			continue
		}
		for _, op := range patch.Ops {
			if err := applyOp(out, op); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

func applyOp(p *plan.Plan, op Op) error {
	step := p.Find(op.StepID)
	if step == nil {
		return errors.NewPatchConflictError(fmt.Sprintf("step %q does not exist", op.StepID))
	}

	switch op.Kind {
	case OpSetParam:
		if step.Params == nil {
			step.Params = make(map[string]any)
		}
		step.Params[op.Param] = op.Value
	case OpRemoveParam:
		delete(step.Params, op.Param)
	case OpRenameTool:
		step.Tool = op.Tool
	case OpRemoveStepEdge:
		deps := step.DependsOn[:0]
		for _, dep := range step.DependsOn {
			if dep != op.Target {
				deps = append(deps, dep)
			}
		}
		step.DependsOn = deps
	default:
		return errors.NewPatchConflictError(fmt.Sprintf("unknown operation %q", op.Kind))
	}
	return nil
}
