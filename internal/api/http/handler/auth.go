package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/service"
)

// Auth handles signup, login, and the temporary-link endpoints.
type Auth struct {
	auth       *service.Auth
	ctxManager model.ContextManager
}

// NewAuth creates an auth handler.
func NewAuth(auth *service.Auth, ctxManager model.ContextManager) *Auth {
	return &Auth{
		auth:       auth,
		ctxManager: ctxManager,
	}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new account and responds with a generic message so the
// endpoint does not reveal whether delivery succeeded.
func (h *Auth) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if _, err := h.auth.Signup(c.Context(), service.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg": "account created, check your email for the activation link",
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a bearer token.
func (h *Auth) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	token, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
	})
}

// Activate redeems an activation key.
func (h *Auth) Activate(c fiber.Ctx) error {
	if _, err := h.auth.Activate(c.Context(), c.Query("key")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "account activated",
	})
}

type emailRequest struct {
	Email string `json:"email"`
}

// ResendActivation issues a fresh activation link.
func (h *Auth) ResendActivation(c fiber.Ctx) error {
	var req emailRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.auth.ResendActivation(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "activation link sent",
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword replaces the password of the authenticated user.
func (h *Auth) ChangePassword(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req changePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.auth.ChangePassword(c.Context(), identity, req.CurrentPassword, req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "password changed",
	})
}

// ForgotPassword issues a password reset link.
func (h *Auth) ForgotPassword(c fiber.Ctx) error {
	var req emailRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.auth.ForgotPassword(c.Context(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "password reset link sent",
	})
}

type resetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ResetPassword redeems a reset key and persists the new password.
func (h *Auth) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.auth.ResetPassword(c.Context(), c.Query("key"), req.NewPassword); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"msg": "password reset",
	})
}

type emailChangeRequest struct {
	NewEmail string `json:"new_email"`
}

// RequestEmailChange issues a confirmation link for a new email address.
func (h *Auth) RequestEmailChange(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req emailChangeRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	if err := h.auth.RequestEmailChange(c.Context(), identity, req.NewEmail); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "confirmation link sent to the new address",
	})
}

// ConfirmEmailChange redeems an email change key.
func (h *Auth) ConfirmEmailChange(c fiber.Ctx) error {
	if err := h.auth.ConfirmEmailChange(c.Context(), c.Query("key")); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"msg": "email changed",
	})
}

// ValidateLink reports whether a link key is still redeemable without
// consuming it. 204 when alive, 410 otherwise.
func (h *Auth) ValidateLink(c fiber.Ctx) error {
	if err := h.auth.ValidateLink(c.Context(), c.Query("key")); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
