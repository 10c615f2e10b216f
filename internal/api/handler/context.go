package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filesvault/files-api/internal/api/middleware"
	"github.com/filesvault/files-api/internal/core/domain"
)

// ctxUser extracts the user injected by the TokenAuth middleware. Its absence
// means the route was wired without the middleware; fail closed rather than
// serve an unowned request.
func ctxUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return user, nil
}
