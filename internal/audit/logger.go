// Package audit records security-relevant account activity as structured
// log entries, separate from request logging so the events can be filtered
// and retained on their own.
package audit

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Entry is a single audit record.
type Entry struct {
	Timestamp time.Time
	Action    string
	Username  string
	Status    string
	IPAddress string
}

// Logger writes audit entries through zerolog with an "audit" marker.
type Logger struct {
	log zerolog.Logger
}

// NewLogger returns a Logger that emits entries through the given zerolog logger.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "audit").Logger()}
}

// Log writes an audit entry. The timestamp defaults to now.
func (l *Logger) Log(entry Entry) {
	if l == nil {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	l.log.Info().
		Time("at", entry.Timestamp).
		Str("action", entry.Action).
		Str("username", entry.Username).
		Str("status", entry.Status).
		Str("ip", entry.IPAddress).
		Msg("audit")
}

// LogSuccess records a successful account action originating from r.
func (l *Logger) LogSuccess(r *http.Request, action, username string) {
	l.Log(Entry{Action: action, Username: username, Status: "success", IPAddress: clientIP(r)})
}

// LogFailure records a failed account action originating from r.
func (l *Logger) LogFailure(r *http.Request, action, username string) {
	l.Log(Entry{Action: action, Username: username, Status: "failure", IPAddress: clientIP(r)})
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
