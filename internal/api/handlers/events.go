package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/api/respond"
	"github.com/gatherly/server/internal/domain/events"
)

// EventsHandler serves event CRUD and listing.
type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

// List handles GET /events with search, type, sort, and pagination params.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := events.ParseQuery(r.URL.Query())
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.Service.List(r.Context(), query)
	if err != nil {
		respond.InternalError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}

// Get handles GET /events/{id}.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := eventID(w, r)
	if !ok {
		return
	}

	event, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			respond.Error(w, r, http.StatusNotFound, "Event not found", nil)
			return
		}
		respond.InternalError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, event)
}

// ListMine handles GET /events/user/me.
func (h *EventsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", nil)
		return
	}

	mine, err := h.Service.ListByCreator(r.Context(), claims.UserID)
	if err != nil {
		respond.InternalError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, mine)
}

// Create handles POST /events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", nil)
		return
	}

	var input events.EventInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	event, err := h.Service.Create(r.Context(), input, claims.UserID)
	if err != nil {
		var validationErr events.ValidationError
		if errors.As(err, &validationErr) {
			respond.Error(w, r, http.StatusBadRequest, validationErr.Error(), nil)
			return
		}
		respond.InternalError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, event)
}

// Update handles PUT /events/{id}.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", nil)
		return
	}

	id, ok := eventID(w, r)
	if !ok {
		return
	}

	var patch events.EventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	actor := events.Actor{UserID: claims.UserID, Role: claims.Role}
	event, err := h.Service.Update(r.Context(), id, patch, actor)
	if err != nil {
		writeEventError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, event)
}

// Delete handles DELETE /events/{id}.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.Claims(r)
	if claims == nil {
		respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", nil)
		return
	}

	id, ok := eventID(w, r)
	if !ok {
		return
	}

	actor := events.Actor{UserID: claims.UserID, Role: claims.Role}
	if err := h.Service.Delete(r.Context(), id, actor); err != nil {
		writeEventError(w, r, err)
		return
	}

	respond.Message(w, http.StatusOK, "Event deleted successfully")
}

func writeEventError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr events.ValidationError
	switch {
	case errors.Is(err, events.ErrEventNotFound):
		respond.Error(w, r, http.StatusNotFound, "Event not found", nil)
	case errors.Is(err, events.ErrForbidden):
		respond.Error(w, r, http.StatusForbidden, "Not allowed to modify this event", nil)
	case errors.As(err, &validationErr):
		respond.Error(w, r, http.StatusBadRequest, validationErr.Error(), nil)
	default:
		respond.InternalError(w, r, err)
	}
}

func eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		respond.Error(w, r, http.StatusNotFound, "Event not found", nil)
		return 0, false
	}
	return id, true
}
