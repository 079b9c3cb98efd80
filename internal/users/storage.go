package users

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a user with the given ID or email does not exist.
var ErrNotFound = errors.New("user not found")

// Storage is the interface for the user storage layer.
type Storage interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id uint) error
}
