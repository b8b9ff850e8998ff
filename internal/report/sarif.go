package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/lint"
	"github.com/felixgeelhaar/planlint/internal/version"
)

// SARIF represents a SARIF 2.1.0 report structure
type SARIF struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single run in a SARIF report
type SARIFRun struct {
	Tool              SARIFTool              `json:"tool"`
	AutomationDetails SARIFAutomationDetails `json:"automationDetails"`
	Results           []SARIFResult          `json:"results"`
}

// SARIFTool describes the tool that generated the report
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and the rule descriptors
type SARIFDriver struct {
	Name            string      `json:"name"`
	InformationURI  string      `json:"informationUri,omitempty"`
	SemanticVersion string      `json:"semanticVersion,omitempty"`
	Rules           []SARIFRule `json:"rules"`
}

// SARIFRule is a reportingDescriptor for one lint code
type SARIFRule struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	ShortDescription     SARIFMessage       `json:"shortDescription"`
	DefaultConfiguration SARIFConfiguration `json:"defaultConfiguration"`
}

// SARIFConfiguration carries the default severity level of a rule
type SARIFConfiguration struct {
	Level string `json:"level"`
}

// SARIFAutomationDetails identifies the run for CI correlation
type SARIFAutomationDetails struct {
	ID   string `json:"id"`
	GUID string `json:"guid"`
}

// SARIFResult represents a single finding
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"` // "error" or "warning"
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFMessage contains a text message
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes where the finding occurred
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation  `json:"physicalLocation"`
	LogicalLocations []SARIFLogicalLocation `json:"logicalLocations,omitempty"`
}

// SARIFPhysicalLocation provides document-level location
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
}

// SARIFArtifactLocation identifies the artifact
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFLogicalLocation names the step a finding refers to
type SARIFLogicalLocation struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

// ruleDescriptions gives the short description for each lint code
var ruleDescriptions = map[diag.Code]string{
	diag.CodeUnknownTool:    "Unknown tool",
	diag.CodeMissingParam:   "Missing or undeclared parameter",
	diag.CodeTypeMismatch:   "Parameter type mismatch",
	diag.CodeSecretExposure: "Secret exposure",
	diag.CodeCycle:          "Circular dependency",
	diag.CodeDanglingEdge:   "Dangling dependency edge",
	diag.CodeUnusedOutput:   "Unused step output",
}

// ToSARIF converts a lint result to a SARIF 2.1.0 document. artifactURI
// names the plan document the findings refer to; it may be empty.
func ToSARIF(r *lint.Result, artifactURI string) *SARIF {
	if artifactURI == "" {
		artifactURI = "plan.json"
	}

	return &SARIF{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []SARIFRun{
			{
				Tool: SARIFTool{
					Driver: SARIFDriver{
						Name:            "planlint",
						InformationURI:  "https://github.com/felixgeelhaar/planlint",
						SemanticVersion: version.GetInfo().Short(),
						Rules:           collectRules(r),
					},
				},
				AutomationDetails: SARIFAutomationDetails{
					ID:   "planlint/lint",
					GUID: runGUID(r, artifactURI),
				},
				Results: convertIssues(r, artifactURI),
			},
		},
	}
}

// runGUID derives the automationDetails GUID from the run content, so the
// same result and artifact always export the same document
func runGUID(r *lint.Result, artifactURI string) string {
	var b strings.Builder
	b.WriteString(artifactURI)
	for _, issue := range r.Issues {
		b.WriteByte('\n')
		b.WriteString(string(issue.Code))
		b.WriteByte('|')
		b.WriteString(issue.StepID)
		b.WriteByte('|')
		b.WriteString(issue.Message)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(b.String())).String()
}

// collectRules emits one reporting descriptor per distinct code, in the
// order codes first appear in the result
func collectRules(r *lint.Result) []SARIFRule {
	seen := make(map[diag.Code]bool)
	rules := []SARIFRule{}

	for _, issue := range r.Issues {
		if seen[issue.Code] {
			continue
		}
		seen[issue.Code] = true

		rules = append(rules, SARIFRule{
			ID:               string(issue.Code),
			Name:             string(issue.Code),
			ShortDescription: SARIFMessage{Text: ruleDescriptions[issue.Code]},
			DefaultConfiguration: SARIFConfiguration{
				Level: string(issue.Code.Severity()),
			},
		})
	}
	return rules
}

// convertIssues maps issues to SARIF results, one per issue
func convertIssues(r *lint.Result, artifactURI string) []SARIFResult {
	results := []SARIFResult{}

	for _, issue := range r.Issues {
		result := SARIFResult{
			RuleID:  string(issue.Code),
			Level:   string(issue.Severity),
			Message: SARIFMessage{Text: issue.Message},
		}

		location := SARIFLocation{
			PhysicalLocation: SARIFPhysicalLocation{
				ArtifactLocation: SARIFArtifactLocation{URI: artifactURI},
			},
		}
		if issue.StepID != "" {
			location.LogicalLocations = []SARIFLogicalLocation{
				{Name: issue.StepID, Kind: "member"},
			}
		}
		result.Locations = []SARIFLocation{location}

		results = append(results, result)
	}
	return results
}

// ToJSON serializes the SARIF document
func (s *SARIF) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal SARIF: %w", err)
	}
	return data, nil
}

// Save writes a SARIF report to disk
func Save(s *SARIF, path string) error {
	data, err := s.ToJSON()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write SARIF file: %w", err)
	}
	return nil
}
