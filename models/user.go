package models

import "time"

// User represents a registered storybook account.
// PasswordHash is never serialised; the plain Password is accepted only on
// registration and login requests and is never persisted.
type User struct {
	// ID is the server-assigned identifier (UUIDv7 string).
	ID string `json:"id"`

	// Username is the unique login name chosen at registration.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the public part of the user that is safe to hand out to
// clients.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

// UserSummary is the public projection of a [User].
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Credentials is the body of the register and login requests.
type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4,maxbytes=72"`
}
