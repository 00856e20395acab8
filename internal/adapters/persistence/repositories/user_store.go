package repositories

import (
	"context"
	"errors"

	"taskeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// gormUserStore implements UserStore backed by the users table
type gormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore creates a database-backed user store
func NewGormUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

// GetByUsername gets a user by exact username match. BINARY forces a
// case-sensitive comparison regardless of the column collation.
func (s *gormUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("BINARY username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
