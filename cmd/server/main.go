package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"taskeasy/internal/adapters/http/middleware"
	"taskeasy/internal/adapters/http/routes"
	"taskeasy/internal/adapters/persistence/models"
	"taskeasy/internal/adapters/persistence/repositories"
	"taskeasy/internal/config"
	"taskeasy/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Build the stores for the selected backend
	userStore, todoRepo, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize stores: %v", err)
	}
	defer config.CloseDatabase()

	// Daily overdue-todo reminder sweep
	reminderService := services.NewReminderService(todoRepo)
	reminderService.Start()
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "taskeasy API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, userStore, todoRepo, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// buildStores selects the store backend at composition time. Both backends
// serve the same seed data: the fixed identity table and the sample todos.
func buildStores(cfg *config.Config) (repositories.UserStore, repositories.TodoRepository, error) {
	if cfg.StoreBackend == config.StoreMySQL {
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, nil, err
		}

		if err := models.AutoMigrate(db); err != nil {
			return nil, nil, err
		}
		log.Println("✅ Database migration completed")

		if err := config.NewSeeder(db).Run(); err != nil {
			return nil, nil, err
		}

		return repositories.NewGormUserStore(db), repositories.NewGormTodoRepository(db), nil
	}

	users, err := config.SeedUsers()
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewMemoryUserStore(users), repositories.NewMemoryTodoRepository(config.SeedTodos()), nil
}

// gracefulShutdown handles graceful shutdown on SIGINT/SIGTERM
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("⚠️ Server shutdown error: %v", err)
	}
}
