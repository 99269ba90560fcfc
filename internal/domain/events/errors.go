package events

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound is returned when an event lookup fails.
	ErrEventNotFound = errors.New("event not found")

	// ErrForbidden is returned when the caller is neither the event's
	// creator nor an admin.
	ErrForbidden = errors.New("not allowed to modify this event")
)

// ValidationError reports a malformed event field or query parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
