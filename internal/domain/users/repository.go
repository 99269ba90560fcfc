package users

import "context"

// Repository is the storage contract for user records. Implementations must
// assign monotonically increasing ids on Create and enforce case-sensitive
// username uniqueness (returning ErrUsernameTaken on conflict).
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
