package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry("TEST")
	code := registry.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Thing not found")

	assert.Equal(t, Code("TEST_NOT_FOUND"), code)

	err := registry.New(code)
	assert.Equal(t, code, err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "Thing not found", err.Message)
}

func TestRegistry_DuplicateCodePanics(t *testing.T) {
	registry := NewRegistry("TEST")
	registry.Register("DUP", TypeInternal, http.StatusInternalServerError, "first")

	assert.Panics(t, func() {
		registry.Register("DUP", TypeInternal, http.StatusInternalServerError, "second")
	})
}

func TestRegistry_UnknownCode(t *testing.T) {
	registry := NewRegistry("TEST")

	err := registry.New(Code("TEST_NEVER_REGISTERED"))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Equal(t, TypeInternal, err.Type)
}

func TestError_WithDetailAndCause(t *testing.T) {
	registry := NewRegistry("TEST")
	code := registry.Register("BAD", TypeValidation, http.StatusBadRequest, "bad input")

	cause := errors.New("boom")
	err := registry.New(code).WithDetail("field", "email").WithCause(cause)

	assert.Equal(t, "email", err.Details["field"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		errType    Type
		wantStatus int
	}{
		{TypeValidation, http.StatusBadRequest},
		{TypeAuthentication, http.StatusUnauthorized},
		{TypeAuthorization, http.StatusForbidden},
		{TypeNotFound, http.StatusNotFound},
		{TypeConflict, http.StatusConflict},
		{TypeInternal, http.StatusInternalServerError},
		{TypeExternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := Wrap(errors.New("cause"), "message", tt.errType)
		assert.Equal(t, tt.wantStatus, err.HTTPStatus, "type %s", tt.errType)
		assert.Equal(t, tt.errType, err.Type)
	}
}

func TestToHTTPResponse(t *testing.T) {
	registry := NewRegistry("TEST")
	code := registry.Register("BAD", TypeValidation, http.StatusBadRequest, "bad input")

	// Cause never leaks into the response
	resp := registry.New(code).WithCause(errors.New("secret internals")).ToHTTPResponse()
	assert.False(t, resp.Success)
	assert.Equal(t, "bad input", resp.Error)
	assert.Nil(t, resp.Details)

	// Details map surfaces when present
	resp = registry.New(code).WithDetail("field", "email").ToHTTPResponse()
	require.NotNil(t, resp.Details)
	assert.Equal(t, map[string]any{"field": "email"}, resp.Details)

	// Extra wins over the detail map
	extra := []string{"a", "b"}
	resp = registry.New(code).WithDetail("field", "email").WithExtra(extra).ToHTTPResponse()
	assert.Equal(t, extra, resp.Details)
}

func TestHasCode(t *testing.T) {
	registry := NewRegistry("TEST")
	code := registry.Register("BAD", TypeValidation, http.StatusBadRequest, "bad input")
	other := registry.Register("OTHER", TypeValidation, http.StatusBadRequest, "other")

	err := registry.New(code)
	assert.True(t, HasCode(err, code))
	assert.False(t, HasCode(err, other))
	assert.False(t, HasCode(errors.New("plain"), code))
	assert.False(t, HasCode(nil, code))
}
