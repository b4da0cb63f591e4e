package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("at least one tag is required")

	assert.Equal(t, CategoryValidation, err.Category)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "at least one tag is required")
}

func TestNewConstraintError(t *testing.T) {
	err := NewConstraintError("5 scoring elements are locked but the target movie score only allows for 4")

	assert.Equal(t, CategoryConstraint, err.Category)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus)
	assert.Contains(t, err.Error(), "CONSTRAINT_ERROR")
}

func TestNewRateLimitError(t *testing.T) {
	err := NewRateLimitError("60s")

	assert.Equal(t, CategoryRateLimit, err.Category)
	assert.Equal(t, http.StatusTooManyRequests, err.HTTPStatus)
}

func TestNewDataError(t *testing.T) {
	cause := stderrors.New("read tags.json: no such file")
	err := NewDataError("game data unavailable", cause)

	assert.Equal(t, CategoryData, err.Category)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestToAppErrorPassthrough(t *testing.T) {
	original := NewValidationError("bad input")
	converted := ToAppError(original)

	assert.Same(t, original, converted)
}

func TestToAppErrorNil(t *testing.T) {
	assert.Nil(t, ToAppError(nil))
}

func TestToAppErrorWrapsGenericError(t *testing.T) {
	err := ToAppError(stderrors.New("something broke"))

	require.NotNil(t, err)
	assert.Equal(t, CategoryInternal, err.Category)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
}

func TestToAppErrorDetectsTimeouts(t *testing.T) {
	err := ToAppError(fmt.Errorf("operation timeout after 30s"))

	require.NotNil(t, err)
	assert.Equal(t, CategoryTimeout, err.Category)
	assert.Equal(t, http.StatusGatewayTimeout, err.HTTPStatus)
}
