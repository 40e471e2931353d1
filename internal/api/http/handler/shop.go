package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/service"
)

// Shop handles shop CRUD endpoints.
type Shop struct {
	shops      *service.Shop
	ctxManager model.ContextManager
}

// NewShop creates a shop handler.
func NewShop(shops *service.Shop, ctxManager model.ContextManager) *Shop {
	return &Shop{
		shops:      shops,
		ctxManager: ctxManager,
	}
}

type shopRequest struct {
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	PhoneNumbers []string          `json:"phone_numbers"`
	Emails       []string          `json:"emails"`
	Links        map[string]string `json:"links"`
}

type shopUpdateRequest struct {
	Name         *string            `json:"name"`
	Address      *string            `json:"address"`
	PhoneNumbers *[]string          `json:"phone_numbers"`
	Emails       *[]string          `json:"emails"`
	Links        *map[string]string `json:"links"`
}

type shopResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Address      string            `json:"address,omitempty"`
	PhoneNumbers []string          `json:"phone_numbers,omitempty"`
	Emails       []string          `json:"emails,omitempty"`
	Links        map[string]string `json:"links,omitempty"`
	OwnerID      string            `json:"owner_id"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

func toShopResponse(shop model.Shop) shopResponse {
	return shopResponse{
		ID:           shop.ID,
		Name:         shop.Name,
		Address:      shop.Address,
		PhoneNumbers: shop.PhoneNumbers,
		Emails:       shop.Emails,
		Links:        shop.Links,
		OwnerID:      shop.OwnerID.String(),
		CreatedAt:    formatTime(shop.CreatedAt),
		UpdatedAt:    formatTime(shop.UpdatedAt),
	}
}

func toShopResponses(shops []model.Shop) []shopResponse {
	out := make([]shopResponse, 0, len(shops))
	for _, shop := range shops {
		out = append(out, toShopResponse(shop))
	}
	return out
}

// Create inserts a shop owned by the caller.
func (h *Shop) Create(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req shopRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	shop, err := h.shops.Create(c.Context(), identity, service.ShopInput{
		Name:         req.Name,
		Address:      req.Address,
		PhoneNumbers: req.PhoneNumbers,
		Emails:       req.Emails,
		Links:        req.Links,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(toShopResponse(shop))
}

// GetByID returns a shop by id.
func (h *Shop) GetByID(c fiber.Ctx) error {
	shop, err := h.shops.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toShopResponse(shop))
}

// List returns a page of shops, optionally narrowed by name.
func (h *Shop) List(c fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	shops, err := h.shops.List(c.Context(), c.Query("name"), page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toShopResponses(shops))
}

// ListMine returns a page of shops owned by the caller.
func (h *Shop) ListMine(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err)
	}

	shops, err := h.shops.ListMine(c.Context(), identity, page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toShopResponses(shops))
}

// Update applies a partial mutation to a shop owned by the caller.
func (h *Shop) Update(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	var req shopUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return respondBadBody(c)
	}

	shop, err := h.shops.Update(c.Context(), identity, c.Params("id"), model.ShopUpdate{
		Name:         req.Name,
		Address:      req.Address,
		PhoneNumbers: req.PhoneNumbers,
		Emails:       req.Emails,
		Links:        req.Links,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(toShopResponse(shop))
}

// Delete removes a shop owned by the caller.
func (h *Shop) Delete(c fiber.Ctx) error {
	identity, ok := h.ctxManager.GetUserFromContext(c.Context())
	if !ok {
		return respondError(c, model.ErrInvalidToken)
	}

	if err := h.shops.Delete(c.Context(), identity, c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// pageFromQuery reads pagination query parameters. Absent parameters are
// left zero for the service to default; present ones must be positive
// integers.
func pageFromQuery(c fiber.Ctx) (model.PageParams, error) {
	var page model.PageParams

	var err error
	if page.Page, err = positiveQueryInt(c, "page"); err != nil {
		return model.PageParams{}, err
	}
	if page.Limit, err = positiveQueryInt(c, "limit"); err != nil {
		return model.PageParams{}, err
	}

	return page, nil
}

func positiveQueryInt(c fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", model.ErrValidation, name)
	}

	return value, nil
}
