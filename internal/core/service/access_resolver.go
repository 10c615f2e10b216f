package service

import (
	"context"
	"errors"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// AccessResolver composes the session manager with the user repository:
// token -> session -> user. Every protected request goes through it.
type AccessResolver struct {
	sessions ports.SessionManager
	users    ports.UserRepository
}

func NewAccessResolver(sessions ports.SessionManager, users ports.UserRepository) *AccessResolver {
	return &AccessResolver{sessions: sessions, users: users}
}

// ResolveToken returns the user owning the session behind token. A session
// that resolves to a user who no longer exists is still ErrUnauthorized: the
// caller never learns whether the token or the account was the problem.
func (r *AccessResolver) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	userID, err := r.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := r.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
