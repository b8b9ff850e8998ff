// Package rules implements the fixed, ordered lint rule set. Each rule is
// an independent, side-effect-free check producing zero or more issues;
// order affects only diagnostic ordering, never correctness.
package rules

import (
	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/plan"
	"github.com/felixgeelhaar/planlint/internal/refs"
	"github.com/felixgeelhaar/planlint/internal/tool"
)

// Config carries caller options visible to the rules
type Config struct {
	AutoFix bool
}

// Inputs is the read-only context every rule checks against
type Inputs struct {
	Plan     *plan.Plan
	Registry *tool.Registry
	Graph    *refs.Graph
	Secrets  []string
	Config   Config
}

// Rule is one independent check
type Rule interface {
	Code() diag.Code
	Check(in Inputs) []diag.Issue
}

// Default returns the fixed rule set in evaluation order
func Default() []Rule {
	return []Rule{
		unknownTool{},
		missingParam{},
		typeMismatch{},
		secretExposure{},
		cycle{},
		danglingEdge{},
		unusedOutput{},
	}
}

// Run evaluates every rule and concatenates the findings. One bad step
// never suppresses diagnostics on other steps.
func Run(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, rule := range Default() {
		issues = append(issues, rule.Check(in)...)
	}
	return issues
}
