package events

import "context"

// Repository is the storage contract for event records. Implementations
// assign monotonically increasing ids on Create and must serialize
// read-modify-write sequences so ids stay unique and patches are not lost
// under concurrent requests.
type Repository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	// Apply runs mutate against the stored event inside the repository's
	// critical section and persists the result if mutate returns nil.
	// A mutate error aborts the write and is returned unchanged.
	Apply(ctx context.Context, id int64, mutate func(*Event) error) (*Event, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*Event, error)
}
