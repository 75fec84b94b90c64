package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeProjectToken(t *testing.T) {
	tests := []struct {
		name      string
		project   string
		projectID string
	}{
		{name: "plain", project: "Website Redesign", projectID: "c0a8012e-1111-4b7f-9d3e-000000000001"},
		{name: "separators in name", project: "A.B|C.D", projectID: "id-2"},
		{name: "unicode", project: "Überarbeitung ✓", projectID: "id-3"},
		{name: "empty name", project: "", projectID: "id-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := EncodeProjectToken(tt.project, tt.projectID)
			assert.NotEmpty(t, token)
			assert.NotContains(t, token, "/")
			assert.NotContains(t, token, "+")

			name, id, err := DecodeProjectToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.project, name)
			assert.Equal(t, tt.projectID, id)
		})
	}
}

func TestDecodeProjectTokenError(t *testing.T) {
	// Wrong number of fields
	_, _, err := DecodeProjectToken(EncodeMultiFieldToken("only-one"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Invalid base64 in a field
	_, _, err = DecodeProjectToken("!!!.abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing id
	_, _, err = DecodeProjectToken(EncodeProjectToken("name", ""))
	assert.Error(t, err)
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "", "c")
	fields, err := DecodeMultiFieldToken(token, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, fields)

	_, err = DecodeMultiFieldToken(token, 2)
	assert.Error(t, err)
}
