package diag

import "sort"

// Sort orders issues deterministically: issues without a step id first,
// then by step position in the plan, errors before warnings, code
// ascending, message as the final tie-break. stepIndex maps a step id to
// its plan position.
func Sort(issues []Issue, stepIndex func(string) int) {
	rank := func(s Severity) int {
		if s == SeverityError {
			return 0
		}
		return 1
	}

	sort.SliceStable(issues, func(a, b int) bool {
		ia, ib := issues[a], issues[b]

		aHasStep := ia.StepID != ""
		bHasStep := ib.StepID != ""
		if aHasStep != bHasStep {
			return !aHasStep
		}
		if aHasStep && ia.StepID != ib.StepID {
			return stepIndex(ia.StepID) < stepIndex(ib.StepID)
		}
		if ra, rb := rank(ia.Severity), rank(ib.Severity); ra != rb {
			return ra < rb
		}
		if ia.Code != ib.Code {
			return ia.Code < ib.Code
		}
		return ia.Message < ib.Message
	})
}

// Dedupe removes exact (code, step, message) repeats, keeping first
// occurrences and preserving order
func Dedupe(issues []Issue) []Issue {
	type key struct {
		code    Code
		stepID  string
		message string
	}

	seen := make(map[key]bool, len(issues))
	out := issues[:0]
	for _, issue := range issues {
		k := key{issue.Code, issue.StepID, issue.Message}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, issue)
	}
	return out
}
