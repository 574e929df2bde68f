package identity

import (
	"context"
	"errors"
)

var (
	// ErrDuplicateEmail is returned when a user with the email already exists.
	ErrDuplicateEmail = errors.New("user already exists")
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when no user matches email+password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository is the storage contract for user accounts. Users are never
// deleted or re-keyed.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
}
