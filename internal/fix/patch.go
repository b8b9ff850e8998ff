// Package fix represents plan repairs as data: ordered lists of primitive
// edit operations applied to immutable Plan values. Applying a patch never
// mutates the source plan.
package fix

import (
	"encoding/json"
	"fmt"
)

// OpKind identifies a primitive edit operation
type OpKind string

// Primitive edit operations over a plan
const (
	OpSetParam       OpKind = "set_param"
	OpRemoveParam    OpKind = "remove_param"
	OpRenameTool     OpKind = "rename_tool"
	OpRemoveStepEdge OpKind = "remove_step_edge"
)

// Op is one primitive edit, addressed by step id and, where relevant,
// parameter key or edge target
type Op struct {
	Kind   OpKind `json:"op"`
	StepID string `json:"step_id"`
	Param  string `json:"param,omitempty"`
	Value  any    `json:"value,omitempty"`
	Tool   string `json:"tool,omitempty"`
	Target string `json:"target,omitempty"`
}

// Patch is an ordered sequence of edit operations
type Patch struct {
	Ops []Op `json:"ops"`
}

// SetParam builds a patch that sets one parameter value
func SetParam(stepID, param string, value any) *Patch {
	return &Patch{Ops: []Op{{Kind: OpSetParam, StepID: stepID, Param: param, Value: value}}}
}

// RemoveParam builds a patch that deletes one parameter
func RemoveParam(stepID, param string) *Patch {
	return &Patch{Ops: []Op{{Kind: OpRemoveParam, StepID: stepID, Param: param}}}
}

// RenameTool builds a patch that renames a step's tool
func RenameTool(stepID, tool string) *Patch {
	return &Patch{Ops: []Op{{Kind: OpRenameTool, StepID: stepID, Tool: tool}}}
}

// RemoveStepEdge builds a patch that drops one depends_on entry
func RemoveStepEdge(stepID, target string) *Patch {
	return &Patch{Ops: []Op{{Kind: OpRemoveStepEdge, StepID: stepID, Target: target}}}
}

// IsEmpty returns true if the patch contains no operations
func (p *Patch) IsEmpty() bool {
	return p == nil || len(p.Ops) == 0
}

// Describe returns a short human-readable summary of the patch
func (p *Patch) Describe() string {
	if p.IsEmpty() {
		return "no-op"
	}
	op := p.Ops[0]
	switch op.Kind {
	case OpSetParam:
		return fmt.Sprintf("set %s.%s", op.StepID, op.Param)
	case OpRemoveParam:
		return fmt.Sprintf("remove %s.%s", op.StepID, op.Param)
	case OpRenameTool:
		return fmt.Sprintf("rename tool of %s to %q", op.StepID, op.Tool)
	case OpRemoveStepEdge:
		return fmt.Sprintf("remove edge %s -> %s", op.StepID, op.Target)
	default:
		return string(op.Kind)
	}
}

// ToJSON serializes the patch
func (p *Patch) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FromJSON parses a patch from JSON
func FromJSON(data []byte) (*Patch, error) {
	var p Patch
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
