// Package lint wires the registry, reference resolver, rule engine and
// aggregator into the validation entry point.
//
// A lint invocation is a pure, synchronous computation over immutable
// inputs: every intermediate structure is freshly allocated per call, so a
// single Linter value is safe for concurrent use.
package lint

import (
	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/log"
	"github.com/felixgeelhaar/planlint/internal/plan"
	"github.com/felixgeelhaar/planlint/internal/refs"
	"github.com/felixgeelhaar/planlint/internal/rules"
	"github.com/felixgeelhaar/planlint/internal/tool"
)

// Options configures a Linter
type Options struct {
	// AutoFix attaches synthesized patches to repairable issues
	AutoFix bool
}

// Linter validates plans against a fixed tool registry
type Linter struct {
	registry *tool.Registry
	opts     Options
	logger   *log.Logger
}

// New builds a Linter. Duplicate tool names or unknown type tags in the
// specs are configuration errors.
func New(specs []tool.Spec, opts Options) (*Linter, error) {
	registry, err := tool.NewRegistry(specs)
	if err != nil {
		return nil, err
	}
	return &Linter{
		registry: registry,
		opts:     opts,
		logger:   log.DefaultLogger(),
	}, nil
}

// Lint validates the plan and returns the aggregated findings. It returns
// an error only for malformed inputs (duplicate step ids); every
// plan-quality problem is reported as an Issue, never as an error, and one
// bad step never suppresses findings on the others.
func (l *Linter) Lint(p *plan.Plan, secrets []string) (*Result, error) {
	if err := p.CheckIDs(); err != nil {
		return nil, err
	}

	graph := refs.Resolve(p)
	issues := rules.Run(rules.Inputs{
		Plan:     p,
		Registry: l.registry,
		Graph:    graph,
		Secrets:  secrets,
		Config:   rules.Config{AutoFix: l.opts.AutoFix},
	})

	issues = diag.Dedupe(issues)
	diag.Sort(issues, p.Index)

	if l.opts.AutoFix {
		for i := range issues {
			issues[i].Fix = issues[i].Synthesize()
		}
	}

	result := &Result{Issues: issues}
	l.logger.Debug("lint complete",
		"steps", len(p.Steps),
		"tools", l.registry.Len(),
		"issues", len(issues),
		"errors", result.HasErrors(),
	)
	return result, nil
}

// Lint is a convenience wrapper building a one-shot Linter
func Lint(p *plan.Plan, specs []tool.Spec, secrets []string, opts Options) (*Result, error) {
	l, err := New(specs, opts)
	if err != nil {
		return nil, err
	}
	return l.Lint(p, secrets)
}
