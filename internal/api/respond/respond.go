// Package respond owns response serialization. Every error body is a JSON
// object with a "message" field; expired-token responses also carry
// "expired": true so the client can prompt a re-login instead of showing a
// bad-credentials error.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

type errorBody struct {
	Message string `json:"message"`
	Expired bool   `json:"expired,omitempty"`
}

type Option func(*errorBody)

// WithExpired marks the error as an expired-token failure.
func WithExpired() Option {
	return func(body *errorBody) {
		body.Expired = true
	}
}

// JSON writes payload as a JSON response.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Message writes a {"message": ...} success body.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error writes a {"message": ...} error body and logs the underlying error
// from the request-scoped logger: 5xx at error level, 4xx at warn. In
// production the message is all a client ever sees; err stays in the logs.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, err error, opts ...Option) {
	body := errorBody{Message: message}
	for _, opt := range opts {
		opt(&body)
	}

	if status >= 400 && r != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		if err != nil {
			event = event.Err(err)
		}
		event.
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	}

	JSON(w, status, body)
}

// InternalError reduces an unexpected error to a generic 500. The err detail
// never reaches the client regardless of environment.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	Error(w, r, http.StatusInternalServerError, "Internal server error", err)
}
