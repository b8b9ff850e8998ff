package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/planlint/internal/errors"
)

func boolPtr(b bool) *bool { return &b }

func TestNewRegistry(t *testing.T) {
	specs := []Spec{
		{Name: "fetch", Required: []string{"url"}, Types: map[string]TypeTag{"url": TypeString}},
		{Name: "summarize", Required: []string{"text"}},
	}

	r, err := NewRegistry(specs)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())

	s, ok := r.Lookup("fetch")
	require.True(t, ok)
	assert.Equal(t, []string{"url"}, s.Required)

	_, ok = r.Lookup("absent")
	assert.False(t, ok)
}

func TestNewRegistryDuplicateName(t *testing.T) {
	_, err := NewRegistry([]Spec{{Name: "fetch"}, {Name: "fetch"}})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestNewRegistryUnknownTypeTag(t *testing.T) {
	_, err := NewRegistry([]Spec{
		{Name: "fetch", Types: map[string]TypeTag{"url": "uri"}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "uri")
}

func TestSuggest(t *testing.T) {
	r, err := NewRegistry([]Spec{
		{Name: "fetch"},
		{Name: "search"},
		{Name: "summarize"},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"one edit away", "fetc", "fetch"},
		{"two edits away", "fet", "fetch"},
		{"exact name", "fetch", "fetch"},
		{"too far", "translate", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Suggest(tt.in))
		})
	}
}

func TestSuggestTieYieldsNothing(t *testing.T) {
	r, err := NewRegistry([]Spec{{Name: "read"}, {Name: "real"}})
	require.NoError(t, err)

	// "real" is distance 1 from both candidates.
	assert.Equal(t, "", r.Suggest("reaa"))
	assert.Equal(t, "", Closest("reaa", []string{"read", "real"}))
}

func TestClosestEmptyCandidates(t *testing.T) {
	assert.Equal(t, "", Closest("fetch", nil))
}

func TestSpecDeclares(t *testing.T) {
	s := Spec{Required: []string{"url"}, Optional: []string{"timeout"}}

	assert.True(t, s.Declares("url"))
	assert.True(t, s.Declares("timeout"))
	assert.False(t, s.Declares("headers"))
	assert.Equal(t, []string{"url", "timeout"}, s.DeclaredParams())
}

func TestSpecPure(t *testing.T) {
	assert.False(t, Spec{}.Pure(), "unknown effect must not count as pure")
	assert.False(t, Spec{SideEffect: boolPtr(true)}.Pure())
	assert.True(t, Spec{SideEffect: boolPtr(false)}.Pure())
}

func TestTypeTagMatches(t *testing.T) {
	tests := []struct {
		tag   TypeTag
		value any
		want  bool
	}{
		{TypeString, "x", true},
		{TypeString, 3, false},
		{TypeNumber, 3, true},
		{TypeNumber, 3.14, true},
		{TypeNumber, "3", false},
		{TypeBoolean, true, true},
		{TypeObject, map[string]any{}, true},
		{TypeArray, []any{1}, true},
		{TypeArray, map[string]any{}, false},
		{TypeAny, nil, true},
		{TypeAny, []any{}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tag.Matches(tt.value), "tag %s value %v", tt.tag, tt.value)
	}
}

func TestTagOf(t *testing.T) {
	assert.Equal(t, "null", TagOf(nil))
	assert.Equal(t, "number", TagOf(int64(1)))
	assert.Equal(t, "unknown", TagOf(struct{}{}))
}
