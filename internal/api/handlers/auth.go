package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gatherly/server/internal/api/respond"
	"github.com/gatherly/server/internal/audit"
	"github.com/gatherly/server/internal/auth"
	"github.com/gatherly/server/internal/domain/users"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Users      *users.Service
	JWTManager *auth.JWTManager
	Audit      *audit.Logger
}

func NewAuthHandler(usersService *users.Service, jwtManager *auth.JWTManager, auditLogger *audit.Logger) *AuthHandler {
	return &AuthHandler{Users: usersService, JWTManager: jwtManager, Audit: auditLogger}
}

type loginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt string           `json:"expiresAt"`
	User      users.PublicUser `json:"user"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input users.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, err := h.Users.Register(r.Context(), input); err != nil {
		var validationErr users.ValidationError
		switch {
		case errors.As(err, &validationErr):
			respond.Error(w, r, http.StatusBadRequest, validationErr.Error(), nil)
		case errors.Is(err, users.ErrUsernameTaken):
			respond.Error(w, r, http.StatusBadRequest, "Username already exists", nil)
		default:
			respond.InternalError(w, r, err)
		}
		return
	}

	h.Audit.LogSuccess(r, "register", input.Username)
	respond.Message(w, http.StatusCreated, "Registration successful")
}

// Login handles POST /login. Unknown usernames and wrong passwords produce
// the same 401 body.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.Users.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			h.Audit.LogFailure(r, "login", input.Username)
			respond.Error(w, r, http.StatusUnauthorized, "Invalid credentials", nil)
			return
		}
		respond.InternalError(w, r, err)
		return
	}

	token, err := h.JWTManager.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		respond.InternalError(w, r, err)
		return
	}

	h.Audit.LogSuccess(r, "login", user.Username)
	respond.JSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.JWTManager.Expiry()).Format(time.RFC3339),
		User:      user.Public(),
	})
}
