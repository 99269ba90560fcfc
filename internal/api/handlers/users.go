package handlers

import (
	"errors"
	"net/http"

	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/api/respond"
	"github.com/gatherly/server/internal/domain/users"
)

// UsersHandler serves the current-user and admin user listing endpoints.
type UsersHandler struct {
	Users *users.Service
}

func NewUsersHandler(usersService *users.Service) *UsersHandler {
	return &UsersHandler{Users: usersService}
}

// Me handles GET /user.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", nil)
		return
	}

	user, err := h.Users.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			respond.Error(w, r, http.StatusNotFound, "User not found", nil)
			return
		}
		respond.InternalError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, user.Public())
}

// List handles GET /admin/users. RequireAdmin gates the route; the response
// is redacted regardless.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Users.List(r.Context())
	if err != nil {
		respond.InternalError(w, r, err)
		return
	}

	public := make([]users.PublicUser, 0, len(list))
	for _, user := range list {
		public = append(public, user.Public())
	}
	respond.JSON(w, http.StatusOK, public)
}
