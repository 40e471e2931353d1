package handler

import "github.com/gofiber/fiber/v3"

// Health reports liveness and basic application info.
type Health struct {
	appName string
	mode    string
	debug   bool
}

// NewHealth creates a health handler.
func NewHealth(appName, mode string, debug bool) *Health {
	return &Health{
		appName: appName,
		mode:    mode,
		debug:   debug,
	}
}

// Check responds 200 with application info.
func (h *Health) Check(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"app_name": h.appName,
		"mode":     h.mode,
		"debug":    h.debug,
	})
}
