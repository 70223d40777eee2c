package repository

import (
	"context"

	"acceso-portal/internal/domain/user"
)

type UserRepository interface {
	// Create appends a record and returns its assigned identifier.
	// Returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, u *user.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Count(ctx context.Context) (int64, error)
	// List returns all records in insertion order.
	List(ctx context.Context) ([]user.User, error)
}
