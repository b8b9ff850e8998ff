package report

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planlint/internal/diag"
	"github.com/felixgeelhaar/planlint/internal/lint"
)

func sampleResult() *lint.Result {
	return &lint.Result{Issues: []diag.Issue{
		diag.New(diag.CodeCycle, "a", "circular dependency: a -> b -> a"),
		diag.New(diag.CodeUnknownTool, "c", `unknown tool "fetc" (did you mean "fetch"?)`),
		diag.New(diag.CodeUnknownTool, "d", `unknown tool "ghost"`),
	}}
}

func TestRecordsProjection(t *testing.T) {
	records := Records(sampleResult())

	require.Len(t, records, 3)
	assert.Equal(t, Record{
		Code:     "W001",
		Severity: "warning",
		StepID:   "a",
		Message:  "circular dependency: a -> b -> a",
	}, records[0])
	assert.Equal(t, "E001", records[1].Code)
	assert.Equal(t, "error", records[1].Severity)
}

func TestRecordsJSONOmitsEmptyStep(t *testing.T) {
	r := &lint.Result{Issues: []diag.Issue{
		diag.New(diag.CodeCycle, "", "circular dependency: x -> x"),
	}}

	data, err := RecordsJSON(r)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "step_id")
}

func TestToSARIFDocument(t *testing.T) {
	doc := ToSARIF(sampleResult(), "plans/deploy.yaml")

	assert.Equal(t, "https://json.schemastore.org/sarif-2.1.0.json", doc.Schema)
	assert.Equal(t, "2.1.0", doc.Version)
	require.Len(t, doc.Runs, 1)

	run := doc.Runs[0]
	assert.Equal(t, "planlint", run.Tool.Driver.Name)
	assert.NotEmpty(t, run.Tool.Driver.SemanticVersion)

	_, err := uuid.Parse(run.AutomationDetails.GUID)
	require.NoError(t, err)

	// One rule per distinct code, in first-appearance order.
	require.Len(t, run.Tool.Driver.Rules, 2)
	assert.Equal(t, "W001", run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "warning", run.Tool.Driver.Rules[0].DefaultConfiguration.Level)
	assert.Equal(t, "E001", run.Tool.Driver.Rules[1].ID)
	assert.Equal(t, "error", run.Tool.Driver.Rules[1].DefaultConfiguration.Level)

	require.Len(t, run.Results, 3)
	first := run.Results[0]
	assert.Equal(t, "W001", first.RuleID)
	assert.Equal(t, "warning", first.Level)
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "plans/deploy.yaml", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	require.Len(t, first.Locations[0].LogicalLocations, 1)
	assert.Equal(t, "a", first.Locations[0].LogicalLocations[0].Name)
}

func TestToSARIFDeterministic(t *testing.T) {
	first, err := ToSARIF(sampleResult(), "plans/deploy.yaml").ToJSON()
	require.NoError(t, err)
	second, err := ToSARIF(sampleResult(), "plans/deploy.yaml").ToJSON()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "same result and artifact export byte-identically")

	other := ToSARIF(sampleResult(), "plans/other.yaml")
	same := ToSARIF(sampleResult(), "plans/deploy.yaml")
	assert.NotEqual(t, other.Runs[0].AutomationDetails.GUID, same.Runs[0].AutomationDetails.GUID,
		"GUID is content-addressed, not constant")
}

func TestToSARIFDefaultArtifact(t *testing.T) {
	doc := ToSARIF(sampleResult(), "")
	uri := doc.Runs[0].Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI
	assert.Equal(t, "plan.json", uri)
}

func TestToSARIFEmptyResult(t *testing.T) {
	doc := ToSARIF(&lint.Result{}, "plan.json")

	data, err := doc.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	runs := decoded["runs"].([]any)
	run := runs[0].(map[string]any)
	assert.Empty(t, run["results"], "results must serialize as [], not null")
	assert.NotNil(t, run["results"])
}
