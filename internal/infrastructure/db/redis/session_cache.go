package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/filesvault/files-api/internal/core/ports"
)

// SessionCache stores session tokens in Redis.
// Key format: session:<token> -> userID, expiring via the key's own TTL.
type SessionCache struct {
	client *redis.Client
}

// NewSessionCache creates a SessionCache wrapping the given Redis client.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{client: client}
}

// Put binds token to userID for ttl.
func (s *SessionCache) Put(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Fetch returns the user id bound to token. Expired entries are gone from
// Redis by then, so they read as plain misses.
func (s *SessionCache) Fetch(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ports.ErrSessionNotFound
		}
		return "", fmt.Errorf("session fetch: %w", err)
	}
	return userID, nil
}

// Delete removes the entry for token. A missing key is not an error.
func (s *SessionCache) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionCache) key(token string) string {
	return "session:" + token
}
