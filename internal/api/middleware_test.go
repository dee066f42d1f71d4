package api

import (
	"encoding/json/v2"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeTransformerAlwaysIncludesVersion(t *testing.T) {
	tests := []struct {
		name   string
		status string
		input  any
	}{
		{name: "success response", status: "200", input: map[string]string{"key": "value"}},
		{name: "no content response", status: "204", input: nil},
		{name: "bad request error", status: "400", input: errors.New("invalid input")},
		{name: "not found error", status: "404", input: errors.New("resource not found")},
		{
			name:   "conflict error with details",
			status: "409",
			input: &APIError{
				Code:    "CONFLICT",
				Message: "library already exists",
				Details: map[string]string{"name": "Alice"},
			},
		},
		{name: "internal server error", status: "500", input: errors.New("internal error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := EnvelopeTransformer(nil, tt.status, tt.input)
			require.NoError(t, err)

			jsonBytes, err := json.Marshal(result)
			require.NoError(t, err)

			var envelope map[string]any
			require.NoError(t, json.Unmarshal(jsonBytes, &envelope))

			require.Contains(t, envelope, "v")
			assert.Equal(t, float64(EnvelopeVersion), envelope["v"])
		})
	}
}

func TestEnvelopeTransformerSuccess(t *testing.T) {
	data := map[string]string{"name": "데미안"}

	result, err := EnvelopeTransformer(nil, "200", data)
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok)
	assert.True(t, envelope.Success)
	assert.Equal(t, data, envelope.Data)
	assert.Empty(t, envelope.Error)
}

func TestEnvelopeTransformerError(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "404", &APIError{
		Code:    "NOT_FOUND",
		Message: "book not found",
	})
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok)
	assert.False(t, envelope.Success)
	assert.Equal(t, "book not found", envelope.Error)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Nil(t, envelope.Data)
}

func TestEnvelopeTransformerPlainError(t *testing.T) {
	result, err := EnvelopeTransformer(nil, "500", errors.New("boom"))
	require.NoError(t, err)

	envelope, ok := result.(APIEnvelope)
	require.True(t, ok)
	assert.False(t, envelope.Success)
	assert.Equal(t, "boom", envelope.Error)
}
