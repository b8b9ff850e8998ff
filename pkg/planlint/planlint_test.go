package planlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingRoundTrip(t *testing.T) {
	specs := []ToolSpec{
		{Name: "fetch", Required: []string{"url"}, Types: map[string]TypeTag{"url": "string"}},
	}
	p := &Plan{Steps: []Step{
		{ID: "s1", Tool: "fetc", Params: map[string]any{"url": "http://x"}},
	}}

	result, err := Lint(p, specs, nil, Options{AutoFix: true})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, CodeUnknownTool, result.Issues[0].Code)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)

	fixed, err := result.ApplyPatch(p)
	require.NoError(t, err)
	assert.Equal(t, "fetch", fixed.Steps[0].Tool)

	clean, err := Lint(fixed, specs, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, clean.Issues)

	sarif, err := ToSARIF(result, "plan.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(sarif), `"ruleId": "E001"`)
}
