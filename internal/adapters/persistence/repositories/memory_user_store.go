package repositories

import (
	"context"

	"taskeasy/internal/adapters/persistence/models"
)

// memoryUserStore implements UserStore over a static in-memory table.
// The map is built once at construction and never written again, so
// concurrent lookups are safe without a lock.
type memoryUserStore struct {
	users map[string]*models.User
}

// NewMemoryUserStore creates a user store from a fixed seed set
func NewMemoryUserStore(users []*models.User) UserStore {
	byName := make(map[string]*models.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &memoryUserStore{users: byName}
}

// GetByUsername gets a user by exact, case-sensitive username match
func (s *memoryUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
