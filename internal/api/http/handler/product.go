package handler

import (
	"bytes"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/service"
)

// Product handles product CRUD and image endpoints.
type Product struct {
	products   *service.Product
	ctxManager model.ContextManager
}

// NewProduct creates a product handler.
func NewProduct(products *service.Product, ctxManager model.ContextManager) *Product {
	return &Product{
		products:   products,
		ctxManager: ctxManager,
	}
}

type productRequest struct {
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	AvailableSizes []string `json:"available_sizes"`
	Colors         []string `json:"colors"`
	ShopID         string   `json:"shop_id"`
}

type productUpdateRequest struct {
	Name           *string   `json:"name"`
	Brand          *string   `json:"brand"`
	Model          *string   `json:"model"`
	Description    *string   `json:"description"`
	Price          *float64  `json:"price"`
	AvailableSizes *[]string `json:"available_sizes"`
	Colors         *[]string `json:"colors"`
	Rating         *float64  `json:"rating"`
}

type productResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand,omitempty"`
	Model          string   `json:"model,omitempty"`
	Description    string   `json:"description,omitempty"`
	Price          float64  `json:"price"`
	AvailableSizes []string `json:"available_sizes,omitempty"`
	Colors         []string `json:"colors,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	ShopID         string   `json:"shop_id"`
	OwnerID        string   `json:"owner_id"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

func toProductResponse(product model.Product) productResponse {
	return productResponse{
		ID:             product.ID,
		Name:           product.Name,
		Brand:          product.Brand,
		Model:          product.Model,
		Description:    product.Description,
		Price:          product.Price,
		AvailableSizes: product.AvailableSizes,
		Colors:         product.Colors,
		Rating:         product.Rating,
		ShopID:         product.ShopID,
		OwnerID:        product.OwnerID.String(),
		CreatedAt:      formatTime(product.CreatedAt),
		UpdatedAt:      formatTime(product.UpdatedAt),
	}
}

func toProductResponses(products []model.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}
	return out
}

// Create inserts a product into a shop owned by the caller.
func (h *Product) Create(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req productRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	product, err := h.products.Create(c.Context(), identity, service.ProductInput{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Price:          req.Price,
		AvailableSizes: req.AvailableSizes,
		Colors:         req.Colors,
		ShopID:         req.ShopID,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetByID returns a product by id.
func (h *Product) GetByID(c fiber.Ctx) error {
	product, err := h.products.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toProductResponse(product))
}

// List returns a page of products, optionally narrowed to a shop.
func (h *Product) List(c fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	products, err := h.products.List(c.Context(), c.Query("shop_id"), page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toProductResponses(products))
}

// Update applies a partial mutation to a product owned by the caller.
func (h *Product) Update(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req productUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	product, err := h.products.Update(c.Context(), identity, c.Params("id"), model.ProductUpdate{
		Name:           req.Name,
		Brand:          req.Brand,
		Model:          req.Model,
		Description:    req.Description,
		Price:          req.Price,
		AvailableSizes: req.AvailableSizes,
		Colors:         req.Colors,
		Rating:         req.Rating,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toProductResponse(product))
}

// Delete removes a product owned by the caller.
func (h *Product) Delete(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	if err := h.products.Delete(c.Context(), identity, c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UploadImage stores the request body as the product image.
func (h *Product) UploadImage(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	body := c.Body()
	if len(body) == 0 {
		return respondError(c, model.ErrValidation)
	}

	contentType := c.Get(fiber.HeaderContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err := h.products.UploadImage(c.Context(), identity, c.Params("id"), bytes.NewReader(body), int64(len(body)), contentType)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"msg": "image uploaded",
	})
}

// DownloadImage streams a product image back.
func (h *Product) DownloadImage(c fiber.Ctx) error {
	rc, contentType, err := h.products.DownloadImage(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, contentType)
	return c.SendStream(rc)
}
