package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// stubCache is an in-memory SessionCache with real expiry semantics.
type stubCache struct {
	entries  map[string]cacheEntry
	failWith error // if set, every call fails with this error
}

type cacheEntry struct {
	userID    string
	expiresAt time.Time
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string]cacheEntry)}
}

func (c *stubCache) Put(_ context.Context, token, userID string, ttl time.Duration) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.entries[token] = cacheEntry{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (c *stubCache) Fetch(_ context.Context, token string) (string, error) {
	if c.failWith != nil {
		return "", c.failWith
	}
	e, ok := c.entries[token]
	if !ok || time.Now().After(e.expiresAt) {
		return "", ports.ErrSessionNotFound
	}
	return e.userID, nil
}

func (c *stubCache) Delete(_ context.Context, token string) error {
	if c.failWith != nil {
		return c.failWith
	}
	delete(c.entries, token)
	return nil
}

func TestSessionService_IssueAndResolve(t *testing.T) {
	cache := newStubCache()
	svc := NewSessionService(cache, time.Hour, zerolog.Nop())

	token, err := svc.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	userID, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %s", userID)
	}
}

func TestSessionService_ConcurrentSessionsAllowed(t *testing.T) {
	cache := newStubCache()
	svc := NewSessionService(cache, time.Hour, zerolog.Nop())

	t1, _ := svc.Issue(context.Background(), "user-1")
	t2, _ := svc.Issue(context.Background(), "user-1")
	if t1 == t2 {
		t.Fatalf("tokens must be unique per issue")
	}

	for _, tok := range []string{t1, t2} {
		if userID, err := svc.Resolve(context.Background(), tok); err != nil || userID != "user-1" {
			t.Fatalf("both sessions must stay valid: %v", err)
		}
	}
}

func TestSessionService_Resolve_Unknown(t *testing.T) {
	svc := NewSessionService(newStubCache(), time.Hour, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), "no-such-token"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("empty token: expected ErrUnauthorized, got %v", err)
	}
}

func TestSessionService_Resolve_Expired(t *testing.T) {
	cache := newStubCache()
	svc := NewSessionService(cache, time.Hour, zerolog.Nop())

	token, err := svc.Issue(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Backdate the entry past its TTL.
	e := cache.entries[token]
	e.expiresAt = time.Now().Add(-time.Second)
	cache.entries[token] = e

	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after expiry, got %v", err)
	}
}

func TestSessionService_Revoke(t *testing.T) {
	cache := newStubCache()
	svc := NewSessionService(cache, time.Hour, zerolog.Nop())

	token, _ := svc.Issue(context.Background(), "user-1")
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("Revoke returned error: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after revocation, got %v", err)
	}

	// Revoking again, or revoking a token that never existed, is fine.
	if err := svc.Revoke(context.Background(), token); err != nil {
		t.Fatalf("second Revoke returned error: %v", err)
	}
	if err := svc.Revoke(context.Background(), "never-issued"); err != nil {
		t.Fatalf("Revoke of unknown token returned error: %v", err)
	}
}

// A cache outage must surface as an internal error, not as Unauthorized.
func TestSessionService_CacheOutage(t *testing.T) {
	cache := newStubCache()
	cache.failWith = errors.New("connection refused")
	svc := NewSessionService(cache, time.Hour, zerolog.Nop())

	if _, err := svc.Issue(context.Background(), "user-1"); err == nil {
		t.Fatalf("expected error")
	}

	_, err := svc.Resolve(context.Background(), "some-token")
	if err == nil || errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("cache outage must not read as Unauthorized, got %v", err)
	}
}
