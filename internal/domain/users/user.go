package users

import "time"

// User is a registered account. Password material never leaves the package;
// API responses use PublicUser.
type User struct {
	ID           int64
	Username     string
	PasswordHash []byte
	PasswordSalt []byte
	Role         string
	CreatedAt    time.Time
}

// PublicUser is the redacted view of a User returned by the API.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
