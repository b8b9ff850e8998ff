// Package report renders lint results for programmatic consumers. Both
// exports are pure projections of the result; no validation logic lives
// here.
package report

import (
	"encoding/json"

	"github.com/felixgeelhaar/planlint/internal/lint"
)

// Record is one diagnostic in the structured list export
type Record struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	StepID   string `json:"step_id,omitempty"`
	Message  string `json:"message"`
}

// Records projects the result into the ordered structured diagnostic list
func Records(r *lint.Result) []Record {
	out := make([]Record, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, Record{
			Code:     string(issue.Code),
			Severity: string(issue.Severity),
			StepID:   issue.StepID,
			Message:  issue.Message,
		})
	}
	return out
}

// RecordsJSON serializes the structured diagnostic list
func RecordsJSON(r *lint.Result) ([]byte, error) {
	return json.MarshalIndent(Records(r), "", "  ")
}
