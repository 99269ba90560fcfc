// Package memory provides mutex-guarded in-memory repositories. All state is
// volatile and lost on restart, which is the intended storage model for this
// server. Id assignment happens under the lock so ids stay unique and
// monotonic when the HTTP layer handles requests in parallel.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gatherly/server/internal/domain/users"
)

// UserRepository implements users.Repository over an in-memory slice.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*users.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, users.ErrUsernameTaken
		}
	}

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users = append(r.users, &stored)

	result := stored
	return &result, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			result := *user
			return &result, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			result := *user
			return &result, nil
		}
	}
	return nil, users.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*users.User, 0, len(r.users))
	for _, user := range r.users {
		result := *user
		list = append(list, &result)
	}
	return list, nil
}
