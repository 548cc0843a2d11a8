package sessions

import (
	"context"
	"errors"
	"time"
)

// Store keeps opaque session tokens mapped to usernames. Implementations
// must expire entries after the given TTL.
type Store interface {
	Create(ctx context.Context, token, username string, ttl time.Duration) error

	// Get returns the username bound to a token, or ErrSessionNotFound.
	Get(ctx context.Context, token string) (string, error)

	Delete(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
