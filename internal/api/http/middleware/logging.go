package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/logger"
)

// RequestLogger logs every request with method, path, status, and duration.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		l.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)

		return err
	}
}
