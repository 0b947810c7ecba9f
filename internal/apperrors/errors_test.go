package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf_WrappedChain(t *testing.T) {
	base := NewServerRejectedError("search returned message \"error\"")
	wrapped := fmt.Errorf("search: %w", base)

	assert.Equal(t, ErrorTypeServerRejected, TypeOf(wrapped))
	assert.True(t, IsType(wrapped, ErrorTypeServerRejected))
	assert.False(t, IsType(wrapped, ErrorTypeNetwork))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("GET /api/experience-data", cause)

	assert.Equal(t, "NETWORK_FAILURE: GET /api/experience-data: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "UNAUTHORIZED: sign in to bookmark", NewUnauthorizedError("sign in to bookmark").Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(NewUnauthorizedError("x")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("x")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("x")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(NewParseError("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
