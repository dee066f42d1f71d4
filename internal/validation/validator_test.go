package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/booknoteapp/booknote-server/internal/errors"
)

type createLibraryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type pageRangeRequest struct {
	StartPage int `json:"startPage" validate:"gte=0"`
	EndPage   int `json:"endPage" validate:"gtefield=StartPage"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	assert.NoError(t, v.Validate(createLibraryRequest{Name: "Alice"}))
	assert.NoError(t, v.Validate(pageRangeRequest{StartPage: 1, EndPage: 10}))
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(createLibraryRequest{})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["name"])
}

func TestValidateCrossField(t *testing.T) {
	v := New()

	err := v.Validate(pageRangeRequest{StartPage: 10, EndPage: 5})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	details := domainErr.Details.(map[string]string)
	assert.Contains(t, details, "endPage")
}
