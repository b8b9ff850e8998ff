package plan

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, schemaID, doc["$id"])
	assert.Equal(t, "Agent Execution Plan v0", doc["title"])
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		asYAML  bool
		wantErr bool
	}{
		{
			name: "valid json plan",
			doc:  `{"steps": [{"id": "s1", "tool": "fetch", "params": {"url": "http://x"}}]}`,
		},
		{
			name:   "valid yaml plan",
			doc:    "steps:\n  - id: s1\n    tool: fetch\n",
			asYAML: true,
		},
		{
			name:    "missing steps",
			doc:     `{"not_steps": []}`,
			wantErr: true,
		},
		{
			name:    "step without tool",
			doc:     `{"steps": [{"id": "s1"}]}`,
			wantErr: true,
		},
		{
			name:    "id wrong type",
			doc:     `{"steps": [{"id": 7, "tool": "fetch"}]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument([]byte(tt.doc), tt.asYAML)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
