package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/newsroom-service/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nil is internal", nil, http.StatusInternalServerError, "internal"},
		{"invalid argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid cursor", service.ErrInvalidCursor, http.StatusBadRequest, "invalid_cursor"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"token expired", service.ErrTokenExpired, http.StatusUnauthorized, "token_expired"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"unauthorized", service.ErrUnauthorized, http.StatusForbidden, "permission_denied"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"already exists", service.ErrAlreadyExists, http.StatusConflict, "already_exists"},
		{"invalid transition", service.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
		{"unknown is internal", fmt.Errorf("db down"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedSentinel(t *testing.T) {
	t.Parallel()

	// Сервис всегда оборачивает сентинелы через %w.
	err := fmt.Errorf("service.lifecycle.ApproveArticle: %w", service.ErrInvalidTransition)

	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusConflict, status)
	require.Equal(t, "invalid_transition", resp.Error.Code)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "rid-1")
	rr := httptest.NewRecorder()

	WriteError(rr, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "rid-1", resp.Error.RequestID)
}
