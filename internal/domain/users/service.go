// Package users implements account registration, authentication, and lookup
// over an injected Repository.
//
// Passwords are hashed with PBKDF2-SHA256 and a random per-user salt; the
// plaintext is never stored. Authentication failures are collapsed into a
// single ErrInvalidCredentials regardless of cause.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/server/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service handles user account operations.
type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "users").Logger(),
		validator: validator.New(),
	}
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a new account with role "user".
//
// Possible errors:
//   - ValidationError: username shorter than 3 or password shorter than 6
//   - ErrUsernameTaken: the username exists (case-sensitive match)
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, registerValidationError(err)
	}

	if _, err := s.repo.GetByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	salt, hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		Username:     input.Username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         string(auth.RoleUser),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the account for id or ErrUserNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns every account in insertion order.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return list, nil
}

// CreateAdmin provisions an admin account directly, bypassing the public
// registration length rules for the username only. The password rules still
// apply. Used by the startup bootstrap.
func (s *Service) CreateAdmin(ctx context.Context, username, password string) (*User, error) {
	if username == "" {
		return nil, ValidationError{Field: "username", Message: "must not be empty"}
	}
	if len(password) < 6 {
		return nil, ValidationError{Field: "password", Message: "must be at least 6 characters"}
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	salt, hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{
		Username:     username,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         string(auth.RoleAdmin),
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("admin account created")
	return user, nil
}

func registerValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return ValidationError{Message: "invalid input"}
	}

	first := fieldErrors[0]
	switch first.Field() {
	case "Username":
		return ValidationError{Field: "username", Message: "must be at least 3 characters"}
	case "Password":
		return ValidationError{Field: "password", Message: "must be at least 6 characters"}
	default:
		return ValidationError{Field: first.Field(), Message: "is invalid"}
	}
}
