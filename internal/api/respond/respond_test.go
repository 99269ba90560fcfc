package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)

	Error(rec, req, http.StatusNotFound, "Event not found", errors.New("boom"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Event not found", body["message"])
	_, hasExpired := body["expired"]
	require.False(t, hasExpired)
}

func TestErrorExpiredFlag(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)

	Error(rec, req, http.StatusUnauthorized, "Token expired", nil, WithExpired())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["expired"])
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)

	InternalError(rec, req, errors.New("pq: secret connection string"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection string")
	require.Contains(t, rec.Body.String(), "Internal server error")
}

func TestErrorLogsClientErrorsWithoutCause(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodPut, "/events/1", nil)
	req = req.WithContext(logger.WithContext(req.Context()))

	Error(httptest.NewRecorder(), req, http.StatusForbidden, "Not allowed to modify this event", nil)

	out := buf.String()
	require.Contains(t, out, `"level":"warn"`)
	require.Contains(t, out, `"status":403`)
	require.Contains(t, out, "Not allowed to modify this event")
}

func TestErrorLogsServerErrorsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req = req.WithContext(logger.WithContext(req.Context()))

	InternalError(httptest.NewRecorder(), req, errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, `"level":"error"`)
	require.Contains(t, out, `"error":"boom"`)
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Message(rec, http.StatusCreated, "Registration successful")

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Registration successful", body["message"])
}
