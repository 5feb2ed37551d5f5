package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorResponse_Defaults(t *testing.T) {
	resp := NewErrorResponse(ClientNotFound, "trace-123")

	assert.Equal(t, string(ClientNotFound), resp.Error.Code)
	assert.Equal(t, "Client not found", resp.Error.Message)
	assert.Equal(t, "trace-123", resp.Error.TraceID)
	assert.Empty(t, resp.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	resp := NewErrorResponse(ValidationGeneral, "trace-123",
		WithDetails("month is required"),
		WithMessage("Bad statement request"),
	)

	assert.Equal(t, "Bad statement request", resp.Error.Message)
	assert.Equal(t, []string{"month is required"}, resp.Error.Details)
}

func TestNewValidationError(t *testing.T) {
	resp := NewValidationError(map[string]string{"date": "is required"}, "trace-9")

	assert.Equal(t, string(ValidationGeneral), resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
	assert.Contains(t, resp.Error.Details[0], "date")
}

func TestWrapSystemError_HidesInternalDetail(t *testing.T) {
	internal := errors.New("pq: connection refused")
	resp, err := WrapSystemError(internal, "trace-9")

	assert.Equal(t, internal, err)
	assert.Equal(t, string(SystemInternalError), resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "pq:")
}

func TestToJSON_RoundTrips(t *testing.T) {
	resp := NewErrorResponse(PlayerNotFound, "trace-1", WithDetails("player 42"))

	data, err := resp.ToJSON()
	require.NoError(t, err)

	var decoded ErrorResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, resp.Error.Code, decoded.Error.Code)
	assert.Equal(t, resp.Error.Details, decoded.Error.Details)
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationInvalidMonth, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{ClientNotFound, http.StatusNotFound},
		{DayEventDuplicate, http.StatusConflict},
		{PlayerNotOfClient, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{ErrorCode("NOPE_999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetHTTPStatus(tt.code), "code %s", tt.code)
	}
}

func TestIsClientAndServerError(t *testing.T) {
	clientErr := NewErrorResponse(ClientNotFound, "t")
	serverErr := NewErrorResponse(SystemDatabaseError, "t")

	assert.True(t, clientErr.IsClientError())
	assert.False(t, clientErr.IsServerError())
	assert.True(t, serverErr.IsServerError())
	assert.False(t, serverErr.IsClientError())
}
