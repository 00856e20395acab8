package handlers

import (
	"taskeasy/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Root handles the root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 taskeasy API is running",
		"mode":    h.cfg.AppMode,
	})
}

// HealthCheck handles the health check
// @Summary Health check
// @Description Check API and store health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	storeStatus := "healthy"
	if h.cfg.StoreBackend == config.StoreMySQL {
		if err := config.HealthCheck(); err != nil {
			storeStatus = "unhealthy"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":   "healthy",
			"store": storeStatus,
		},
	})
}

// APIInfo handles API v1 info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "taskeasy API v1",
		"version": "1.0.0",
	})
}
