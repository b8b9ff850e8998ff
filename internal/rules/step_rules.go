package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/refs"
	"github.com/felixgeelhaar/planlint/internal/tool"
)

// unknownTool reports steps naming a tool absent from the registry (E001)
type unknownTool struct{}

func (unknownTool) Code() diag.Code { return diag.CodeUnknownTool }

func (unknownTool) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, step := range in.Plan.Steps {
		if _, ok := in.Registry.Lookup(step.Tool); ok {
			continue
		}

		msg := fmt.Sprintf("unknown tool %q", step.Tool)
		suggestion := in.Registry.Suggest(step.Tool)
		if suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
		}

		issue := diag.New(diag.CodeUnknownTool, step.ID, msg)
		issue.Suggestion = suggestion
		issues = append(issues, issue)
	}
	return issues
}

// missingParam reports required parameters absent from a step, and supplied
// parameters the tool does not declare (E002). Steps with unresolved tools
// are skipped: there is no contract to check against.
type missingParam struct{}

func (missingParam) Code() diag.Code { return diag.CodeMissingParam }

func (missingParam) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, step := range in.Plan.Steps {
		spec, ok := in.Registry.Lookup(step.Tool)
		if !ok {
			continue
		}

		for _, param := range spec.Required {
			if _, present := step.Params[param]; !present {
				issues = append(issues, diag.New(diag.CodeMissingParam, step.ID,
					fmt.Sprintf("missing required parameter %q for tool %q", param, step.Tool)))
			}
		}

		// Undeclared-parameter check only applies to tools that declare a
		// parameter contract at all.
		declared := spec.DeclaredParams()
		if len(declared) == 0 {
			continue
		}
		for _, param := range sortedParamKeys(step.Params) {
			if spec.Declares(param) {
				continue
			}
			msg := fmt.Sprintf("parameter %q is not declared by tool %q", param, step.Tool)
			if suggestion := tool.Closest(param, declared); suggestion != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
			}
			issues = append(issues, diag.New(diag.CodeMissingParam, step.ID, msg))
		}
	}
	return issues
}

// typeMismatch reports present parameters whose runtime value does not
// match the declared type tag (E003)
type typeMismatch struct{}

func (typeMismatch) Code() diag.Code { return diag.CodeTypeMismatch }

func (typeMismatch) Check(in Inputs) []diag.Issue {
	var issues []diag.Issue
	for _, step := range in.Plan.Steps {
		spec, ok := in.Registry.Lookup(step.Tool)
		if !ok {
			continue
		}

		for _, param := range sortedParamKeys(step.Params) {
			tag, declared := spec.Types[param]
			if !declared || tag == tool.TypeAny {
				continue
			}

			value := step.Params[param]
			// A value that is exactly one reference expression takes the
			// referenced step's output type at runtime; skip it.
			if s, isString := value.(string); isString && refs.IsReference(s) {
				continue
			}

			if !tag.Matches(value) {
				issues = append(issues, diag.New(diag.CodeTypeMismatch, step.ID,
					fmt.Sprintf("parameter %q has type %s, expected %s", param, tool.TagOf(value), tag)))
			}
		}
	}
	return issues
}

// secretExposure scans flattened parameter values for secret patterns
// (E004). It runs regardless of tool resolution. The matched value is
// never echoed, only the pattern name and parameter key.
type secretExposure struct{}

func (secretExposure) Code() diag.Code { return diag.CodeSecretExposure }

func (secretExposure) Check(in Inputs) []diag.Issue {
	if len(in.Secrets) == 0 {
		return nil
	}

	var issues []diag.Issue
	for _, step := range in.Plan.Steps {
		for _, param := range sortedParamKeys(step.Params) {
			// The parameter name itself is part of the scanned text, same
			// as nested mapping keys.
			flat := strings.ToLower(param + "\n" + flatten(step.Params[param]))
			for _, pattern := range in.Secrets {
				if pattern == "" || !strings.Contains(flat, strings.ToLower(pattern)) {
					continue
				}
				issue := diag.New(diag.CodeSecretExposure, step.ID,
					fmt.Sprintf("parameter %q matches secret pattern %q", param, pattern))
				issue.Param = param
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// flatten reduces a parameter value tree to a single searchable string of
// its scalar leaves and mapping keys
func flatten(value any) string {
	var b strings.Builder
	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case string:
			b.WriteString(val)
			b.WriteByte('\n')
		case map[string]any:
			for _, key := range sortedParamKeys(val) {
				b.WriteString(key)
				b.WriteByte('\n')
				walk(val[key])
			}
		case []any:
			for _, item := range val {
				walk(item)
			}
		default:
			fmt.Fprintf(&b, "%v\n", val)
		}
	}
	walk(value)
	return b.String()
}

func sortedParamKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
