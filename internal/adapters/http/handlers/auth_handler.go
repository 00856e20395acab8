package handlers

import (
	"errors"
	"strings"

	"taskeasy/internal/adapters/http/middleware"
	"taskeasy/internal/config"
	"taskeasy/internal/core/services"
	"taskeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login and refresh endpoints
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
	cfg          *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, tokenService *services.TokenService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries an issued or refreshed token
type TokenResponse struct {
	Token string `json:"token"`
}

// Authenticate handles credential login and issues a token
// @Summary Authenticate user
// @Description Verify credentials and return a signed token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /authenticate [post]
func (h *AuthHandler) Authenticate(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.authService.Authenticate(c.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			return response.BadRequest(c, "Username and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			return response.Unauthorized(c, "Invalid username or password")
		case errors.Is(err, services.ErrAccountDisabled):
			return response.Unauthorized(c, "User account is disabled")
		default:
			return response.InternalServerError(c, "Failed to authenticate")
		}
	}

	token, err := h.tokenService.Issue(user)
	if err != nil {
		return response.InternalServerError(c, "Failed to issue token")
	}

	return response.Success(c, "Authenticated", TokenResponse{Token: token})
}

// Refresh exchanges a still-refreshable token for a new one
// @Summary Refresh token
// @Description Exchange a token within its refresh window for a new one
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /refresh [get]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	tokenString := middleware.BearerToken(c, h.cfg.JWT.Header)
	if tokenString == "" {
		return response.BadRequest(c, "Bearer token required")
	}

	token, err := h.tokenService.Refresh(c.Context(), tokenString)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRefreshNotAllowed):
			return response.BadRequest(c, "Token can no longer be refreshed")
		case errors.Is(err, services.ErrIdentityVanished):
			return response.Unauthorized(c, "Authentication required")
		default:
			return response.InternalServerError(c, "Failed to refresh token")
		}
	}

	return response.Success(c, "Token refreshed", TokenResponse{Token: token})
}
