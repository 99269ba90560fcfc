package users

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user lookup fails.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when registering an existing username.
	// The match is case-sensitive and exact.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports a malformed registration field.
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
