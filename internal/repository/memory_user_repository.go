package repository

import (
	"context"
	"sync"

	"acceso-portal/internal/domain/user"
	portal_errors "acceso-portal/pkg/errors"
)

// MemoryUserRepository keeps records in memory for the process lifetime.
// The mutex makes the duplicate-check and append atomic under concurrent
// requests; the email index keeps lookups off the slice scan while the
// slice preserves insertion order for listing.
type MemoryUserRepository struct {
	mu      sync.Mutex
	users   []user.User
	byEmail map[string]int
	nextID  int64
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *user.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return 0, portal_errors.ErrAlreadyExists
	}

	u.ID = r.nextID
	r.nextID++

	r.byEmail[u.Email] = len(r.users)
	r.users = append(r.users, *u)

	return u.ID, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, exists := r.byEmail[email]
	if !exists {
		return user.User{}, portal_errors.ErrNotFound
	}
	return r.users[idx], nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *MemoryUserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]user.User, len(r.users))
	copy(out, r.users)
	return out, nil
}
