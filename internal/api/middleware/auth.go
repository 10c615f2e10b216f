package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filesvault/files-api/internal/api/metrics"
	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "X-Token"

// userContextKey is where the resolved user is stored in the echo context.
const userContextKey = "auth_user"

// TokenAuth resolves the session token into a user and injects it into the
// request context. Missing tokens, unknown sessions, and dangling users all
// fail with 401; only a backend outage becomes a 500.
func TokenAuth(resolver ports.AccessResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			user, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
				}
				return err
			}

			c.Set(userContextKey, user)

			return next(c)
		}
	}
}

// UserFromContext returns the user injected by TokenAuth, or nil when the
// middleware did not run.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// SetUser injects a user into the context. Intended for handler tests.
func SetUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}
