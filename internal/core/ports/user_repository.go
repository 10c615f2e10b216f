package ports

import (
	"context"

	"github.com/filesvault/files-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID resolves a user from its hex id. A syntactically invalid id
	// is reported as domain.ErrUserNotFound, never as a distinct error.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
