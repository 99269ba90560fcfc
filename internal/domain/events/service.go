// Package events implements event CRUD with ownership-based authorization
// and the list query pipeline (search, type filter, sort, pagination).
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherly/server/internal/auth"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Service handles event operations over an injected Repository.
type Service struct {
	repo      Repository
	logger    zerolog.Logger
	validator *validator.Validate
	now       func() time.Time
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:      repo,
		logger:    logger.With().Str("component", "events").Logger(),
		validator: validator.New(),
		now:       time.Now,
	}
}

// Create stores a new event owned by creatorID.
//
// Possible errors:
//   - ValidationError: missing title/description/eventType, or an eventType
//     outside the accepted set
func (s *Service) Create(ctx context.Context, input EventInput, creatorID int64) (*Event, error) {
	if err := s.validator.Struct(input); err != nil {
		return nil, inputValidationError(err)
	}

	imageURL := input.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	event, err := s.repo.Create(ctx, &Event{
		Title:       input.Title,
		Description: input.Description,
		EventType:   input.EventType,
		ImageURL:    imageURL,
		Location:    input.Location,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		CreatedBy:   creatorID,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info().Int64("event_id", event.ID).Int64("created_by", creatorID).Msg("event created")
	return event, nil
}

// Get returns the event for id or ErrEventNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial patch to an event. Only the event's creator or an
// admin may update it; the not-found check runs first so a missing id is
// reported as such even to unauthorized callers. The check-merge-store
// sequence runs inside the repository's critical section so concurrent
// patches to disjoint fields cannot overwrite each other.
func (s *Service) Update(ctx context.Context, id int64, patch EventPatch, actor Actor) (*Event, error) {
	result, err := s.repo.Apply(ctx, id, func(event *Event) error {
		if !canModify(event, actor) {
			return ErrForbidden
		}
		if err := s.validator.Struct(patch); err != nil {
			return inputValidationError(err)
		}
		applyPatch(event, patch)
		updatedAt := s.now()
		event.UpdatedAt = &updatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("event_id", id).Int64("actor", actor.UserID).Msg("event updated")
	return result, nil
}

// Delete removes an event under the same authorization rule as Update.
// Deleting a missing id returns ErrEventNotFound, never a silent no-op.
func (s *Service) Delete(ctx context.Context, id int64, actor Actor) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !canModify(event, actor) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info().Int64("event_id", id).Int64("actor", actor.UserID).Msg("event deleted")
	return nil
}

// List runs the query pipeline over a full scan.
func (s *Service) List(ctx context.Context, query Query) (Result, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list events: %w", err)
	}
	return ApplyQuery(all, query), nil
}

// ListByCreator returns every event created by userID, in insertion order.
func (s *Service) ListByCreator(ctx context.Context, userID int64) ([]*Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	mine := make([]*Event, 0)
	for _, event := range all {
		if event.CreatedBy == userID {
			mine = append(mine, event)
		}
	}
	return mine, nil
}

func canModify(event *Event, actor Actor) bool {
	return event.CreatedBy == actor.UserID || auth.IsAdmin(actor.Role)
}

func applyPatch(event *Event, patch EventPatch) {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.EventType != nil {
		event.EventType = *patch.EventType
	}
	if patch.ImageURL != nil {
		event.ImageURL = *patch.ImageURL
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.StartDate != nil {
		event.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		event.EndDate = *patch.EndDate
	}
}

func inputValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return ValidationError{Message: "invalid input"}
	}

	first := fieldErrors[0]
	switch first.Field() {
	case "Title":
		return ValidationError{Field: "title", Message: "is required"}
	case "Description":
		return ValidationError{Field: "description", Message: "is required"}
	case "EventType":
		return ValidationError{Field: "eventType", Message: "must be one of general, conference, workshop, social, other"}
	default:
		return ValidationError{Field: first.Field(), Message: "is invalid"}
	}
}
