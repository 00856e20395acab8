package routes

import (
	"taskeasy/internal/adapters/http/handlers"
	"taskeasy/internal/adapters/http/middleware"
	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/config"
	"taskeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes. The stores are injected so the composition
// (memory or mysql backend) stays in main.
func Setup(app *fiber.App, userStore repositories.UserStore, todoRepo repositories.TodoRepository, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(userStore)
	tokenService := services.NewTokenService(userStore, cfg.JWT.Secret, cfg.JWT.TokenLifetime, cfg.JWT.RefreshGrace)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService, tokenService, cfg)
	todoHandler := handlers.NewTodoHandler(todoService)
	basicHandler := handlers.NewBasicAuthHandler()

	// Health
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Token endpoints (public, stricter rate limit)
	app.Post(cfg.JWT.LoginPath, middleware.AuthRateLimiter(), authHandler.Authenticate)
	app.Get(cfg.JWT.RefreshPath, middleware.AuthRateLimiter(), authHandler.Refresh)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// HTTP Basic scheme (independent front-end over the same user store)
	basicRoutes := apiV1.Group("/basicauth")
	basicRoutes.Use(middleware.RequireBasic(authService))
	basicRoutes.Get("/", basicHandler.Probe)

	// Todo routes (token-protected)
	todoRoutes := apiV1.Group("/users/:username/todos")
	todoRoutes.Use(middleware.RequireToken(tokenService, cfg.JWT.Header))
	setupTodoRoutes(todoRoutes, todoHandler)
}

// setupTodoRoutes configures todo CRUD routes
func setupTodoRoutes(router fiber.Router, handler *handlers.TodoHandler) {
	router.Get("/", handler.List)
	router.Get("/:id", handler.Get)
	router.Post("/", handler.Create)
	router.Put("/:id", handler.Update)
	router.Delete("/:id", handler.Delete)
}
