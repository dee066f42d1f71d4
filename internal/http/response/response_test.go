package response

import (
	"encoding/json/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booknoteapp/booknote-server/internal/errors"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"name": "Alice"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	env := decode(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
}

func TestHandleErrorDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", errors.NotFound("book 1 not found"), http.StatusNotFound},
		{"validation", errors.Validation("library name is required"), http.StatusBadRequest},
		{"conflict", errors.Conflict("no active library"), http.StatusConflict},
		{"already exists", errors.AlreadyExists("library exists"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, assert.AnError, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decode(t, rec).Error)
}
