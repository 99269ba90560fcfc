package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gatherly/server/internal/domain/events"
)

// EventRepository implements events.Repository over an in-memory slice kept
// in insertion order.
type EventRepository struct {
	mu     sync.RWMutex
	events []*events.Event
	nextID int64
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(_ context.Context, event *events.Event) (*events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *event
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.events = append(r.events, &stored)

	result := stored
	return &result, nil
}

func (r *EventRepository) GetByID(_ context.Context, id int64) (*events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, event := range r.events {
		if event.ID == id {
			result := *event
			return &result, nil
		}
	}
	return nil, events.ErrEventNotFound
}

// Apply mutates the stored event under the write lock so concurrent patches
// cannot interleave and revert each other's fields.
func (r *EventRepository) Apply(_ context.Context, id int64, mutate func(*events.Event) error) (*events.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.events {
		if existing.ID == id {
			working := *existing
			if err := mutate(&working); err != nil {
				return nil, err
			}
			working.ID = id
			r.events[i] = &working
			result := working
			return &result, nil
		}
	}
	return nil, events.ErrEventNotFound
}

func (r *EventRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.events {
		if existing.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return events.ErrEventNotFound
}

func (r *EventRepository) List(_ context.Context) ([]*events.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*events.Event, 0, len(r.events))
	for _, event := range r.events {
		result := *event
		list = append(list, &result)
	}
	return list, nil
}
