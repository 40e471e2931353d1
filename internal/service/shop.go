package service

import (
	"context"
	"fmt"

	"github.com/dtroode/marketplace-server/internal/model"
)

// Shop implements shop CRUD. Mutations are scoped to the owner taken from
// the verified session identity; the store filters by (id, owner) jointly,
// so a foreign shop surfaces as model.ErrNotFound.
type Shop struct {
	shops model.ShopStore
}

// NewShop creates a shop service.
func NewShop(shops model.ShopStore) *Shop {
	return &Shop{shops: shops}
}

// ShopInput carries the fields of a shop create request.
type ShopInput struct {
	Name         string
	Address      string
	PhoneNumbers []string
	Emails       []string
	Links        map[string]string
}

// Create inserts a shop owned by the caller.
func (s *Shop) Create(ctx context.Context, identity model.TokenUser, input ShopInput) (model.Shop, error) {
	if input.Name == "" {
		return model.Shop{}, fmt.Errorf("%w: shop name is required", model.ErrValidation)
	}

	shop, err := s.shops.Create(ctx, model.Shop{
		Name:         input.Name,
		Address:      input.Address,
		PhoneNumbers: input.PhoneNumbers,
		Emails:       input.Emails,
		Links:        input.Links,
		OwnerID:      identity.ID,
	})
	if err != nil {
		return model.Shop{}, fmt.Errorf("failed to create shop: %w", err)
	}

	return shop, nil
}

// GetByID returns a shop by id.
func (s *Shop) GetByID(ctx context.Context, id string) (model.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return model.Shop{}, fmt.Errorf("failed to get shop: %w", err)
	}

	return shop, nil
}

// List returns a page of shops sorted by name. When name is set, results
// are narrowed to a case-insensitive substring match.
func (s *Shop) List(ctx context.Context, name string, page model.PageParams) ([]model.Shop, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	var shops []model.Shop
	if name != "" {
		shops, err = s.shops.SearchByName(ctx, name, page)
	} else {
		shops, err = s.shops.List(ctx, page)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	return shops, nil
}

// ListMine returns a page of shops owned by the caller.
func (s *Shop) ListMine(ctx context.Context, identity model.TokenUser, page model.PageParams) ([]model.Shop, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	shops, err := s.shops.ListByOwner(ctx, identity.ID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list own shops: %w", err)
	}

	return shops, nil
}

// Update applies a partial mutation to a shop owned by the caller.
func (s *Shop) Update(ctx context.Context, identity model.TokenUser, id string, update model.ShopUpdate) (model.Shop, error) {
	if update.Empty() {
		return model.Shop{}, model.ErrEmptyUpdate
	}

	shop, err := s.shops.Update(ctx, id, identity.ID, update)
	if err != nil {
		return model.Shop{}, fmt.Errorf("failed to update shop: %w", err)
	}

	return shop, nil
}

// Delete removes a shop owned by the caller.
func (s *Shop) Delete(ctx context.Context, identity model.TokenUser, id string) error {
	if err := s.shops.Delete(ctx, id, identity.ID); err != nil {
		return fmt.Errorf("failed to delete shop: %w", err)
	}

	return nil
}

// normalizePage applies the default limit and rejects non-positive values.
func normalizePage(page model.PageParams) (model.PageParams, error) {
	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = model.DefaultPageLimit
	}
	if !page.Valid() {
		return model.PageParams{}, fmt.Errorf("%w: page and limit must be positive", model.ErrValidation)
	}
	return page, nil
}
