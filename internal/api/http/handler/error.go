package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
)

// respondError maps service errors to HTTP status codes. Every error body
// has the shape {"msg": "..."}; the wrapped internal chain never leaks to
// the client.
func respondError(c fiber.Ctx, err error) error {
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"msg": messageFromError(err),
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrNotActive):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInvalidToken):
		return fiber.StatusUnauthorized
	case errors.Is(err, model.ErrLinkExpired):
		return fiber.StatusGone
	case errors.Is(err, model.ErrDuplicate):
		return fiber.StatusConflict
	case errors.Is(err, model.ErrValidation), errors.Is(err, model.ErrEmptyUpdate):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// messageFromError strips the wrap chain down to a user-facing message.
// Validation errors keep their detail since it is written for the client.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.ErrNotFound.Error()
	case errors.Is(err, model.ErrNotActive):
		return model.ErrNotActive.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		return model.ErrInvalidCredentials.Error()
	case errors.Is(err, model.ErrInvalidToken):
		return model.ErrInvalidToken.Error()
	case errors.Is(err, model.ErrLinkExpired):
		return model.ErrLinkExpired.Error()
	case errors.Is(err, model.ErrDuplicate):
		return model.ErrDuplicate.Error()
	case errors.Is(err, model.ErrValidation):
		return err.Error()
	case errors.Is(err, model.ErrEmptyUpdate):
		return model.ErrEmptyUpdate.Error()
	default:
		return "internal server error"
	}
}

func respondBadBody(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"msg": "invalid request body",
	})
}
