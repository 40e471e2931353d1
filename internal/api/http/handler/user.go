package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
)

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: formatTime(user.CreatedAt),
	}
}

// GetUser returns a public account record.
func (h *Auth) GetUser(c fiber.Ctx) error {
	user, err := h.auth.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toUserResponse(user))
}
