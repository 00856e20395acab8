package services

import (
	"context"
	"errors"

	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/pkg/password"
)

// Authentication errors
var (
	ErrInvalidInput       = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("user account is disabled")
)

// AuthService verifies submitted credentials against the user store
type AuthService struct {
	users repositories.UserStore
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Authenticate resolves a (username, password) pair to a verified identity.
// An unknown username and a wrong password both surface ErrInvalidCredentials
// so the caller cannot enumerate accounts through error messages. The
// disabled check runs after the password verifies, keeping the cost of a
// disabled-account probe identical to a normal login.
func (s *AuthService) Authenticate(ctx context.Context, username, plaintext string) (*models.User, error) {
	if username == "" || plaintext == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	return user, nil
}
