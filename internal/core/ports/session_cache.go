package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned by SessionCache.Fetch on a cache miss,
// including entries that expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionCache is the ephemeral token store behind the session manager.
// Entries expire on their own via the backend's TTL mechanism; no sweeping
// is done by the caller.
type SessionCache interface {
	Put(ctx context.Context, token, userID string, ttl time.Duration) error
	// Fetch returns the user id bound to token, or ErrSessionNotFound on a
	// miss. Any other error means the cache itself is unavailable.
	Fetch(ctx context.Context, token string) (string, error)
	// Delete removes the entry for token. Deleting a missing token is not
	// an error.
	Delete(ctx context.Context, token string) error
}
