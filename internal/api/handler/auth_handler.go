package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filesvault/files-api/internal/api/metrics"
	"github.com/filesvault/files-api/internal/api/middleware"
	"github.com/filesvault/files-api/internal/core/domain"
	"github.com/filesvault/files-api/internal/core/ports"
)

// AuthHandler handles the session lifecycle endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type connectResponse struct {
	Token string `json:"token"`
}

// Connect authenticates with Basic credentials and issues a session token.
//
// @Summary      Login with Basic credentials
// @Tags         auth
// @Produce      json
// @Success      200  {object}  connectResponse
// @Failure      401  {object}  errorResponse
// @Router       /connect [get]
func (h *AuthHandler) Connect(c echo.Context) error {
	token, err := h.authService.Login(c.Request().Context(), c.Request().Header.Get("Authorization"))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			metrics.AuthFailuresTotal.WithLabelValues("invalid_credentials").Inc()
		}
		return err
	}

	metrics.SessionsIssuedTotal.Inc()
	return c.JSON(http.StatusOK, connectResponse{Token: token})
}

// Disconnect revokes the current session token.
//
// @Summary      Logout
// @Tags         auth
// @Security     TokenAuth
// @Success      204  "no content"
// @Failure      401  {object}  errorResponse
// @Router       /disconnect [get]
func (h *AuthHandler) Disconnect(c echo.Context) error {
	if _, err := ctxUser(c); err != nil {
		return err
	}

	token := c.Request().Header.Get(middleware.TokenHeader)
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
