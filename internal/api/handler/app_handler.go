package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/filesvault/files-api/internal/core/ports"
)

// AppHandler serves the service-level status and stats endpoints.
type AppHandler struct {
	mongo *mongo.Database
	redis *redis.Client
	users ports.UserRepository
	files ports.FileRepository
}

func NewAppHandler(db *mongo.Database, rdb *redis.Client, users ports.UserRepository, files ports.FileRepository) *AppHandler {
	return &AppHandler{mongo: db, redis: rdb, users: users, files: files}
}

type statusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

// Status reports whether the document store and the session cache are reachable.
//
// @Summary      Backend connectivity status
// @Tags         app
// @Produce      json
// @Success      200  {object}  statusResponse
// @Failure      500  {object}  errorResponse
// @Router       /status [get]
func (h *AppHandler) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	status := statusResponse{
		DB:    h.mongo.Client().Ping(ctx, nil) == nil,
		Redis: h.redis.Ping(ctx).Err() == nil,
	}

	if !status.DB || !status.Redis {
		return c.JSON(http.StatusInternalServerError, status)
	}
	return c.JSON(http.StatusOK, status)
}

type statsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

// Stats reports the number of users and file nodes.
//
// @Summary      Record counts
// @Tags         app
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       /stats [get]
func (h *AppHandler) Stats(c echo.Context) error {
	users, err := h.users.Count(c.Request().Context())
	if err != nil {
		return err
	}
	files, err := h.files.Count(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statsResponse{Users: users, Files: files})
}

// HealthHandler handles GET /health — liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness returns 200 immediately; confirms the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
