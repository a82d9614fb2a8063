package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadline-backend/internal/domain"
)

type userRecord struct {
	domain.User
	passwordHash string
}

// UserRepo is the user store over a Store.
type UserRepo struct {
	s *Store
}

// NewUserRepo creates a user repository.
func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

// GetByID returns a user by id.
func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	u := rec.User
	return &u, nil
}

// GetByIDs returns the users found among ids.
func (r *UserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if rec, ok := r.s.users[id]; ok {
			out = append(out, rec.User)
		}
	}
	return out, nil
}

// GetCredentials returns the login projection for username.
func (r *UserRepo) GetCredentials(_ context.Context, username string) (*domain.UserCredentials, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.users {
		if rec.Username == username {
			return &domain.UserCredentials{UserID: rec.ID, PasswordHash: rec.passwordHash}, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
}

// Create stores a user. Username and email are unique.
func (r *UserRepo) Create(_ context.Context, u *domain.User, passwordHash string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.users {
		if rec.ID == u.ID || rec.Username == u.Username || rec.Email == u.Email {
			return nil, fmt.Errorf("user %s: %w", u.Username, domain.ErrAlreadyExists)
		}
	}

	r.s.users[u.ID] = userRecord{User: *u, passwordHash: passwordHash}
	out := *u
	return &out, nil
}
