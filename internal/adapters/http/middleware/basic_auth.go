package middleware

import (
	"encoding/base64"
	"strings"

	"taskeasy/internal/core/services"
	"taskeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequireBasic creates the HTTP Basic middleware. It is an independent
// front-end over the same credential store as the token scheme; the two are
// never composed.
func RequireBasic(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, pass, ok := parseBasic(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return rejectBasic(c)
		}

		user, err := auth.Authenticate(c.Context(), username, pass)
		if err != nil {
			return rejectBasic(c)
		}

		c.Locals("username", user.Username)
		c.Locals("roles", user.RoleList())

		return c.Next()
	}
}

func parseBasic(header string) (username, pass string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(header, prefix))
	if err != nil {
		return "", "", false
	}
	username, pass, ok = strings.Cut(string(decoded), ":")
	return username, pass, ok
}

func rejectBasic(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="taskeasy"`)
	return response.Unauthorized(c, unauthorizedMessage)
}
