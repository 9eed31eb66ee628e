package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")

	err := reg.New(code)
	require.NotNil(t, err)
	assert.Equal(t, "TEST.NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "TEST.NOT_FOUND: thing not found", err.Error())
}

func TestNewWithCauseUnwraps(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("STORE_FAILED", TypeInternal, http.StatusInternalServerError, "store query failed")

	cause := errors.New("connection refused")
	err := reg.NewWithCause(code, cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithDetail(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "invalid input")

	err := reg.New(code).
		WithDetail("field", "page").
		WithDetails(map[string]any{"value": -1})

	assert.Equal(t, "page", err.Details["field"])
	assert.Equal(t, -1, err.Details["value"])
}

func TestWrapPreservesExistingError(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("BUSY", TypeBusiness, http.StatusConflict, "busy")

	original := reg.New(code)
	wrapped := Wrap(original, "something else", TypeInternal)

	assert.Same(t, original, wrapped)
}

func TestWrapGenericError(t *testing.T) {
	wrapped := Wrap(errors.New("boom"), "query failed", TypeInternal)
	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusInternalServerError, wrapped.HTTPStatus)
	assert.Equal(t, TypeInternal, wrapped.Type)

	assert.Nil(t, Wrap(nil, "no-op", TypeInternal))
}

func TestToHTTPResponseOmitsCause(t *testing.T) {
	reg := NewRegistry("TEST")
	code := reg.Register("FAILED", TypeInternal, http.StatusInternalServerError, "operation failed")

	resp := reg.NewWithCause(code, errors.New("secret detail")).ToHTTPResponse()
	assert.Equal(t, "operation failed", resp.Message)
	assert.NotContains(t, resp.Error, "secret detail")
}
