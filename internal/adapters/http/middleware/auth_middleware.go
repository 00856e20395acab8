package middleware

import (
	"strings"

	"taskeasy/internal/core/services"
	"taskeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// unauthorizedMessage is the single rejection signal for every protected
// request that arrives without a usable token. The specific failure reason
// (missing, malformed, bad signature, expired, vanished subject) is never
// forwarded to the client.
const unauthorizedMessage = "Authentication required"

// BearerToken extracts the bearer token from the configured request header.
// Returns "" when the header is absent or not a Bearer scheme.
func BearerToken(c *fiber.Ctx, header string) string {
	value := c.Get(header)
	if value == "" || !strings.HasPrefix(value, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(value, "Bearer ")
}

// RequireToken creates the token-validating middleware guarding protected
// routes. On success the verified claims are stored in request locals.
func RequireToken(tokens *services.TokenService, header string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := BearerToken(c, header)
		if tokenString == "" {
			return response.Unauthorized(c, unauthorizedMessage)
		}

		claims, err := tokens.Validate(c.Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, unauthorizedMessage)
		}

		c.Locals("username", claims.Subject)
		c.Locals("roles", claims.Roles)

		return c.Next()
	}
}
