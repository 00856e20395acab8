package handlers

import (
	"taskeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BasicAuthHandler serves the HTTP Basic probe endpoint
type BasicAuthHandler struct{}

// NewBasicAuthHandler creates a new basic auth handler
func NewBasicAuthHandler() *BasicAuthHandler {
	return &BasicAuthHandler{}
}

// Probe confirms that the Basic credentials verified
// @Summary Basic auth probe
// @Description Returns a fixed message when HTTP Basic credentials verify
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Security BasicAuth
// @Router /api/v1/basicauth [get]
func (h *BasicAuthHandler) Probe(c *fiber.Ctx) error {
	return response.Success(c, "You are authenticated", fiber.Map{
		"username": c.Locals("username"),
	})
}
