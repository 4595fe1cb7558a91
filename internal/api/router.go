package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/taskboard/kanban-api/internal/api/handler"
	"github.com/taskboard/kanban-api/internal/api/middleware"
	"github.com/taskboard/kanban-api/internal/core/service"
	"github.com/taskboard/kanban-api/internal/infrastructure/config"
	sessionredis "github.com/taskboard/kanban-api/internal/infrastructure/db/redis"
	"github.com/taskboard/kanban-api/internal/infrastructure/http/handlers"
	"github.com/taskboard/kanban-api/internal/infrastructure/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("taskboard"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	boardRepo := postgres.NewBoardRepository(pool)
	columnRepo := postgres.NewColumnRepository(pool)
	cardRepo := postgres.NewCardRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	sessions := sessionredis.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	userService := service.NewUserService(userRepo, sessions, cfg.SessionSecret, cfg.SessionTTL, log)
	boardService := service.NewBoardService(boardRepo, userRepo, log)
	columnService := service.NewColumnService(columnRepo, boardRepo, userRepo, log)
	cardService := service.NewCardService(cardRepo, columnRepo, userRepo, log)
	tagService := service.NewTagService(tagRepo, cardRepo, userRepo, log)
	activityService := service.NewActivityService(activityRepo, cardRepo, log)

	validate := handler.NewSchemaValidator()
	authHandler := handler.NewAuthHandler(authService, validate, cfg.SessionTTL)
	userHandler := handler.NewUserHandler(userService, validate, cfg.SessionTTL)
	boardHandler := handler.NewBoardHandler(boardService, validate)
	columnHandler := handler.NewColumnHandler(columnService, validate)
	cardHandler := handler.NewCardHandler(cardService, validate)
	tagHandler := handler.NewTagHandler(tagService, validate)
	activityHandler := handler.NewActivityHandler(activityService, validate)

	// --- Open routes ---
	// Logout stays outside the session group so that a dead session still
	// logs out cleanly.
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.POST("/api/users", userHandler.Create)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	api := e.Group("/api", middleware.Session(authService))

	api.GET("/users/fetch-user", userHandler.FetchUser)

	api.POST("/boards", boardHandler.Create)
	api.GET("/boards/:boardId", boardHandler.GetByID)
	api.GET("/boards/user/:userId", boardHandler.ListByUserID)
	api.PUT("/boards/:boardId", boardHandler.Update)
	api.DELETE("/boards/:boardId", boardHandler.Delete)

	api.POST("/columns", columnHandler.Create)
	api.GET("/columns/:columnId", columnHandler.GetByID)
	api.GET("/columns/user/:userId", columnHandler.ListByUserID)
	api.GET("/columns/board/:boardId", columnHandler.ListByBoardID)
	api.PUT("/columns/:columnId", columnHandler.Update)
	api.DELETE("/columns/:columnId", columnHandler.Delete)

	api.POST("/cards", cardHandler.Create)
	api.GET("/cards/:cardId", cardHandler.GetByID)
	api.GET("/cards/column/:columnId", cardHandler.ListByColumnID)
	api.PUT("/cards/:cardId", cardHandler.Update)
	api.DELETE("/cards/:cardId", cardHandler.Delete)
	api.DELETE("/cards/column/:columnId", cardHandler.DeleteByColumnID)

	api.POST("/tags", tagHandler.Create)
	api.GET("/tags/user/:userId", tagHandler.ListByUserID)
	api.PUT("/tags/:tagId/card", tagHandler.AddCard)
	api.DELETE("/tags/:tagId", tagHandler.Delete)

	api.POST("/activities", activityHandler.Create)
	api.GET("/activities/:cardId", activityHandler.ListByCardID)

	return e
}
