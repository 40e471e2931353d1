package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate validates the Authorization header and injects the decoded
// identity into the request context. Missing or invalid tokens yield 401.
func Authenticate(tokens model.TokenManager, ctxManager model.ContextManager) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": "missing authorization token",
			})
		}

		user, err := tokens.Decode(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": model.ErrInvalidToken.Error(),
			})
		}

		c.SetContext(ctxManager.SetUserToContext(c.Context(), user))

		return c.Next()
	}
}

func extractToken(c fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):]
	}
	return ""
}
