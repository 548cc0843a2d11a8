package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "volunteer-hub.com/volunteer-hub/internal/errors"
	repository "volunteer-hub.com/volunteer-hub/internal/repositories"
	"volunteer-hub.com/volunteer-hub/internal/sessions"
)

type AuthService struct {
	users    *repository.UserRepository
	sessions sessions.Store
	ttl      time.Duration
}

func NewAuthService(users *repository.UserRepository, store sessions.Store, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: store,
		ttl:      ttl,
	}
}

// Login verifies credentials against the stored bcrypt hash and issues an
// opaque session token with the configured TTL.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", time.Time{}, apperrors.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidCredentials
	}

	token := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	if err := s.sessions.Create(ctx, token, username, s.ttl); err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Authenticate resolves a bearer token to the username it was issued for.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	username, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return "", apperrors.ErrSessionRequired
		}
		return "", err
	}
	return username, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// EnsureAdminUser seeds the staff account at startup. The password is hashed
// here so only the hash ever reaches the store.
func (s *AuthService) EnsureAdminUser(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.EnsureUser(ctx, username, string(hash))
}
