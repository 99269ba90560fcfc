package events

import "time"

// DefaultImageURL is applied when a created event carries no image.
const DefaultImageURL = "default.jpg"

// EventTypes is the set of accepted eventType values.
var EventTypes = []string{"general", "conference", "workshop", "social", "other"}

// Event is a single event record. StartDate and EndDate are pass-through
// ISO 8601 strings supplied by the client; the server never interprets them.
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"eventType"`
	ImageURL    string     `json:"imageUrl"`
	Location    string     `json:"location"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	CreatedBy   int64      `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// EventInput carries the fields a client may set on creation.
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	EventType   string `json:"eventType" validate:"required,oneof=general conference workshop social other"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// EventPatch is a partial update. Nil fields are left unchanged; the
// whitelist keeps id, createdBy, and timestamps out of client control.
type EventPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	EventType   *string `json:"eventType" validate:"omitempty,oneof=general conference workshop social other"`
	ImageURL    *string `json:"imageUrl"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// Actor identifies the authenticated caller for ownership checks.
type Actor struct {
	UserID int64
	Role   string
}
