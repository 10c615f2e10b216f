package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService manages opaque bearer tokens backed by a TTL cache. Tokens
// carry no embedded claims; the cache entry is the only record of a session,
// so expiry is enforced by the cache itself and needs no sweeping here.
type SessionService struct {
	cache ports.SessionCache
	ttl   time.Duration
	log   zerolog.Logger
}

func NewSessionService(cache ports.SessionCache, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{cache: cache, ttl: ttl, log: log}
}

// Issue generates a fresh random token and binds it to userID for the
// configured TTL. A user may hold any number of concurrent sessions.
func (s *SessionService) Issue(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.cache.Put(ctx, token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}
	s.log.Debug().Str("user_id", userID).Msg("session issued")
	return token, nil
}

// Resolve returns the user id behind token. The TTL is not refreshed:
// sessions expire a fixed duration after they are issued.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	userID, err := s.cache.Fetch(ctx, token)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("resolve session: %w", err)
	}
	return userID, nil
}

// Revoke deletes the session for token, if any.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.cache.Delete(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
