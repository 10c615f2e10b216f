package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// AuthService implements registration, login, and logout.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionManager
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, log: log}
}

// Register creates a new account. The plaintext password is hashed before it
// leaves this function and is never stored or returned.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.MissingField("email")
	}
	if password == "" {
		return nil, domain.MissingField("password")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login validates a Basic authorization header against the stored hash and
// issues a session token on success.
func (s *AuthService) Login(ctx context.Context, authHeader string) (string, error) {
	email, password, err := decodeBasicCredentials(authHeader)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrUnauthorized
	}

	token, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

// Logout revokes the session behind token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	return nil
}

// decodeBasicCredentials parses an "Authorization: Basic <base64>" header
// into an email/password pair. Any malformation is ErrUnauthorized, with no
// detail about which part was wrong.
func decodeBasicCredentials(header string) (email, password string, err error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "basic") {
		return "", "", domain.ErrUnauthorized
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		return "", "", domain.ErrUnauthorized
	}
	return email, password, nil
}
