package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/filesvault/files-api/internal/api/handler"
	"github.com/filesvault/files-api/internal/api/middleware"
	"github.com/filesvault/files-api/internal/core/service"
	"github.com/filesvault/files-api/internal/infrastructure/config"
	mongodb "github.com/filesvault/files-api/internal/infrastructure/db/mongo"
	redisdb "github.com/filesvault/files-api/internal/infrastructure/db/redis"
	"github.com/filesvault/files-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("files"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	fileRepo := mongodb.NewFileRepository(db)
	sessionCache := redisdb.NewSessionCache(rdb)

	blobStore, err := storage.NewDiskStore(cfg.FolderPath)
	if err != nil {
		return nil, err
	}

	sessions := service.NewSessionService(sessionCache, cfg.SessionTTL, log)
	authService := service.NewAuthService(userRepo, sessions, log)
	fileService := service.NewFileService(fileRepo, blobStore, log)
	resolver := service.NewAccessResolver(sessions, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	fileHandler := handler.NewFileHandler(fileService)
	appHandler := handler.NewAppHandler(db, rdb, userRepo, fileRepo)
	healthHandler := handler.NewHealthHandler()

	tokenAuth := middleware.TokenAuth(resolver)

	// --- Auth routes ---
	e.POST("/users", userHandler.Register)
	e.GET("/connect", authHandler.Connect)
	e.GET("/disconnect", authHandler.Disconnect, tokenAuth)
	e.GET("/users/me", userHandler.Me, tokenAuth)

	// --- File routes ---
	e.POST("/files", fileHandler.Create, tokenAuth)
	e.GET("/files", fileHandler.List, tokenAuth)
	e.GET("/files/:id", fileHandler.Get, tokenAuth)

	// --- Service endpoints (no auth required) ---
	e.GET("/status", appHandler.Status)
	e.GET("/stats", appHandler.Stats)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
