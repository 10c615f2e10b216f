package ports

import (
	"context"

	"github.com/filesvault/files-api/internal/core/domain"
)

// AuthService implements registration and the session lifecycle endpoints.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login validates a Basic authorization header and issues a session
	// token on success.
	Login(ctx context.Context, authHeader string) (string, error)
	Logout(ctx context.Context, token string) error
}

// SessionManager issues, resolves, and revokes opaque session tokens.
type SessionManager interface {
	Issue(ctx context.Context, userID string) (string, error)
	// Resolve returns the user id bound to token. An empty or unknown token
	// fails with domain.ErrUnauthorized; a cache outage surfaces as a
	// distinct internal error.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke is idempotent: revoking a nonexistent token is not an error.
	Revoke(ctx context.Context, token string) error
}

// AccessResolver turns a session token into the owning user, failing closed
// with domain.ErrUnauthorized when the session or the user is gone.
type AccessResolver interface {
	ResolveToken(ctx context.Context, token string) (*domain.User, error)
}
