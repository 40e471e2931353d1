package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/api/http/handler"
	"github.com/dtroode/marketplace-server/internal/api/http/middleware"
	"github.com/dtroode/marketplace-server/internal/model"
)

// Handlers groups the route handlers mounted by the router.
type Handlers struct {
	Auth    *handler.Auth
	Shop    *handler.Shop
	Product *handler.Product
	Health  *handler.Health
}

// RegisterRoutes mounts all routes on the app. Authenticated routes are
// guarded by the bearer token middleware.
func RegisterRoutes(app *fiber.App, h Handlers, tokens model.TokenManager, ctxManager model.ContextManager) {
	authenticated := middleware.Authenticate(tokens, ctxManager)

	app.Get("/health", h.Health.Check)

	auth := app.Group("/auth")
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/activate", h.Auth.Activate)
	auth.Post("/activate/resend", h.Auth.ResendActivation)
	auth.Patch("/password/change", h.Auth.ChangePassword, authenticated)
	auth.Post("/password/forgot", h.Auth.ForgotPassword)
	auth.Options("/password/reset", h.Auth.ValidateLink)
	auth.Patch("/password/reset", h.Auth.ResetPassword)
	auth.Post("/update/email", h.Auth.RequestEmailChange, authenticated)
	auth.Options("/update/email", h.Auth.ValidateLink)
	auth.Patch("/update/email", h.Auth.ConfirmEmailChange)

	app.Get("/users/:id", h.Auth.GetUser)

	shops := app.Group("/shops")
	shops.Get("/", h.Shop.List)
	shops.Get("/me", h.Shop.ListMine, authenticated)
	shops.Get("/:id", h.Shop.GetByID)
	shops.Post("/", h.Shop.Create, authenticated)
	shops.Patch("/:id", h.Shop.Update, authenticated)
	shops.Delete("/:id", h.Shop.Delete, authenticated)

	products := app.Group("/products")
	products.Get("/", h.Product.List)
	products.Get("/:id", h.Product.GetByID)
	products.Post("/", h.Product.Create, authenticated)
	products.Patch("/:id", h.Product.Update, authenticated)
	products.Delete("/:id", h.Product.Delete, authenticated)
	products.Put("/:id/image", h.Product.UploadImage, authenticated)
	products.Get("/:id/image", h.Product.DownloadImage)
}
