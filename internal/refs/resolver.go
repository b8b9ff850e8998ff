// Package refs derives the step dependency graph of a plan.
//
// An edge a -> b exists when a.depends_on names b, or when any parameter
// value of a contains a reference expression ${b.field}. The graph is
// rebuilt from scratch on every lint invocation and never mutated after
// Resolve returns.
package refs

import (
	"regexp"
	"sort"

	"github.com/felixgeelhaar/planlint/internal/plan"
)

// refPattern matches ${step_id.output_field} reference expressions
var refPattern = regexp.MustCompile(`\$\{([A-Za-z0-9_-]+)\.([A-Za-z0-9_.-]+)\}`)

// fullRefPattern matches strings that are exactly one reference expression
var fullRefPattern = regexp.MustCompile(`^\$\{[A-Za-z0-9_-]+\.[A-Za-z0-9_.-]+\}$`)

// IsReference reports whether s is exactly one reference expression.
// Such values have no statically knowable runtime type.
func IsReference(s string) bool {
	return fullRefPattern.MatchString(s)
}

// Kind distinguishes how an edge entered the graph
type Kind int

const (
	// KindReference is an edge derived from a ${step.field} expression
	KindReference Kind = iota
	// KindExplicit is an edge from a depends_on entry
	KindExplicit
)

// String returns a human-readable edge kind
func (k Kind) String() string {
	if k == KindExplicit {
		return "depends_on"
	}
	return "reference"
}

// Edge is one directed dependency between steps
type Edge struct {
	From  string
	To    string
	Kind  Kind
	Field string // referenced output field, for reference edges
	Param string // owning top-level parameter, for reference edges
}

// Graph is the derived dependency graph over step identifiers
type Graph struct {
	order      []string
	exists     map[string]bool
	out        map[string][]Edge
	referenced map[string]map[string]bool
}

// Resolve walks every parameter value of every step once (recursing into
// sequences and mappings) and merges in explicit depends_on entries.
func Resolve(p *plan.Plan) *Graph {
	g := &Graph{
		exists:     make(map[string]bool, len(p.Steps)),
		out:        make(map[string][]Edge, len(p.Steps)),
		referenced: make(map[string]map[string]bool),
	}

	for _, step := range p.Steps {
		g.order = append(g.order, step.ID)
		g.exists[step.ID] = true
	}

	for _, step := range p.Steps {
		seen := make(map[Edge]bool)

		for _, key := range sortedKeys(step.Params) {
			g.walk(step.ID, key, step.Params[key], seen)
		}

		for _, dep := range step.DependsOn {
			edge := Edge{From: step.ID, To: dep, Kind: KindExplicit}
			if !seen[edge] {
				seen[edge] = true
				g.out[step.ID] = append(g.out[step.ID], edge)
			}
		}
	}

	return g
}

// walk recurses through one parameter value recording reference edges
func (g *Graph) walk(from, param string, value any, seen map[Edge]bool) {
	switch v := value.(type) {
	case string:
		for _, m := range refPattern.FindAllStringSubmatch(v, -1) {
			target, field := m[1], m[2]
			edge := Edge{From: from, To: target, Kind: KindReference, Field: field, Param: param}
			if !seen[edge] {
				seen[edge] = true
				g.out[from] = append(g.out[from], edge)
			}
			if from != target {
				if g.referenced[target] == nil {
					g.referenced[target] = make(map[string]bool)
				}
				g.referenced[target][field] = true
			}
		}
	case []any:
		for _, item := range v {
			g.walk(from, param, item, seen)
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			g.walk(from, param, v[key], seen)
		}
	}
}

// StepIDs returns step identifiers in plan order
func (g *Graph) StepIDs() []string {
	return append([]string(nil), g.order...)
}

// Contains reports whether the id names a step in the plan
func (g *Graph) Contains(id string) bool {
	return g.exists[id]
}

// Edges returns the outgoing edges of a step in traversal order
func (g *Graph) Edges(id string) []Edge {
	return g.out[id]
}

// Dangling returns edges whose target names no step in the plan,
// in plan order
func (g *Graph) Dangling() []Edge {
	var out []Edge
	for _, id := range g.order {
		for _, edge := range g.out[id] {
			if !g.exists[edge.To] {
				out = append(out, edge)
			}
		}
	}
	return out
}

// ReferencedFields returns the output fields of a step referenced by any
// other step, sorted
func (g *Graph) ReferencedFields(id string) []string {
	fields := g.referenced[id]
	out := make([]string, 0, len(fields))
	for f := range fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
