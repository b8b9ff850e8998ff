package tool

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

// suggestionCutoff is the largest edit distance Suggest will bridge.
// Anything farther away is more likely a different tool than a typo.
const suggestionCutoff = 2

// Registry indexes tool specifications by name
type Registry struct {
	specs map[string]Spec
	names []string
}

// NewRegistry builds a registry from a spec collection. Duplicate names and
// unknown type tags are configuration errors and abort the build.
func NewRegistry(specs []Spec) (*Registry, error) {
	r := &Registry{specs: make(map[string]Spec, len(specs))}

	for _, s := range specs {
		if _, exists := r.specs[s.Name]; exists {
			return nil, errors.NewDuplicateToolError(s.Name)
		}
		for param, tag := range s.Types {
			if !tag.Valid() {
				return nil, errors.NewUnknownTypeError(s.Name, param, string(tag))
			}
		}
		r.specs[s.Name] = s
		r.names = append(r.names, s.Name)
	}

	// Sorted scan order keeps Suggest deterministic.
	sort.Strings(r.names)
	return r, nil
}

// Lookup returns the spec registered under name
func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.specs[name]
	return s, ok
}

// Names returns the registered tool names in sorted order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered tools
func (r *Registry) Len() int {
	return len(r.specs)
}

// Suggest returns the registered name closest to the given one, when that
// name is within the cutoff and strictly closer than every other candidate.
// Ties yield no suggestion rather than a misleading auto-fix.
func (r *Registry) Suggest(name string) string {
	return Closest(name, r.names)
}

// Closest implements the suggestion contract over an arbitrary candidate
// list; it is shared by tool-name and parameter-name suggestions.
func Closest(name string, candidates []string) string {
	best := ""
	bestDist := suggestionCutoff + 1
	tied := false

	for _, candidate := range candidates {
		d := levenshtein.ComputeDistance(name, candidate)
		switch {
		case d < bestDist:
			best = candidate
			bestDist = d
			tied = false
		case d == bestDist:
			tied = true
		}
	}

	if tied || bestDist > suggestionCutoff {
		return ""
	}
	return best
}
