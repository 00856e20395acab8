package services

import (
	"context"
	"errors"
	"time"

	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/pkg/jwt"
)

// Token lifecycle errors
var (
	ErrIdentityVanished  = errors.New("token subject no longer exists")
	ErrRefreshNotAllowed = errors.New("token can no longer be refreshed")
)

// TokenService issues, validates and refreshes access tokens. Tokens are
// stateless: validity is wholly determined by signature and expiry at
// verification time, there is no server-side revocation list.
type TokenService struct {
	users        repositories.UserStore
	secret       string
	lifetime     time.Duration
	refreshGrace time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(users repositories.UserStore, secret string, lifetime, refreshGrace time.Duration) *TokenService {
	return &TokenService{
		users:        users,
		secret:       secret,
		lifetime:     lifetime,
		refreshGrace: refreshGrace,
	}
}

// Issue creates a new signed token for a verified identity, embedding its
// role labels as claims
func (s *TokenService) Issue(user *models.User) (string, error) {
	return jwt.Encode(user.Username, user.RoleList(), s.secret, s.lifetime)
}

// Validate decodes and verifies a presented token, then re-resolves its
// subject against the user store. A store that can shrink must not leave
// orphaned tokens usable.
func (s *TokenService) Validate(ctx context.Context, tokenString string) (*jwt.Claims, error) {
	claims, err := jwt.Decode(tokenString, s.secret)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, claims.Subject); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrIdentityVanished
		}
		return nil, err
	}

	return claims, nil
}

// CanRefresh reports whether a token may still be exchanged for a new one:
// its signature must verify, its expiry must be no further in the past than
// the refresh grace window, and its subject must still resolve.
func (s *TokenService) CanRefresh(ctx context.Context, tokenString string) bool {
	claims, err := jwt.DecodeAllowExpired(tokenString, s.secret)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	if time.Now().After(claims.ExpiresAt.Add(s.refreshGrace)) {
		return false
	}

	_, err = s.users.GetByUsername(ctx, claims.Subject)
	return err == nil
}

// Refresh exchanges a refreshable token for a brand-new one with a fresh
// issued-at/expiry pair for the same subject. The old token is not tracked;
// it simply ages out.
func (s *TokenService) Refresh(ctx context.Context, tokenString string) (string, error) {
	if !s.CanRefresh(ctx, tokenString) {
		return "", ErrRefreshNotAllowed
	}

	claims, err := jwt.DecodeAllowExpired(tokenString, s.secret)
	if err != nil {
		return "", ErrRefreshNotAllowed
	}

	user, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", ErrIdentityVanished
		}
		return "", err
	}

	return s.Issue(user)
}
