package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
)

func TestWriteAppError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, fmt.Errorf("toggle: %w", apperrors.NewUnauthorizedError("You must be signed in to bookmark.")))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "UNAUTHORIZED", body.Error)
	assert.Equal(t, "You must be signed in to bookmark.", body.Message)
}

func TestDecodeJSONRequest_RejectsUnknownFields(t *testing.T) {
	var dst struct {
		Mode string `json:"mode"`
	}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mode":"title","extra":1}`))

	assert.Error(t, DecodeJSONRequest(w, r, &dst))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", FormatDate(d))

	d, err = ParseDate("2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.May, d.Month())

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)
}
