package service

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/marketplace-server/internal/model"
)

// Product implements product CRUD and image storage. Ownership follows the
// same (id, owner) filter contract as shops.
type Product struct {
	products model.ProductStore
	shops    model.ShopStore
	files    model.FileStorage
}

// NewProduct creates a product service.
func NewProduct(products model.ProductStore, shops model.ShopStore, files model.FileStorage) *Product {
	return &Product{
		products: products,
		shops:    shops,
		files:    files,
	}
}

// ProductInput carries the fields of a product create request.
type ProductInput struct {
	Name           string
	Brand          string
	Model          string
	Description    string
	Price          float64
	AvailableSizes []string
	Colors         []string
	ShopID         string
}

// Create inserts a product into a shop owned by the caller. A missing or
// foreign shop yields model.ErrNotFound.
func (s *Product) Create(ctx context.Context, identity model.TokenUser, input ProductInput) (model.Product, error) {
	if input.Name == "" {
		return model.Product{}, fmt.Errorf("%w: product name is required", model.ErrValidation)
	}
	if input.Price < 0 {
		return model.Product{}, fmt.Errorf("%w: price must not be negative", model.ErrValidation)
	}

	shop, err := s.shops.GetByID(ctx, input.ShopID)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get shop: %w", err)
	}
	if shop.OwnerID != identity.ID {
		return model.Product{}, model.ErrNotFound
	}

	product, err := s.products.Create(ctx, model.Product{
		Name:           input.Name,
		Brand:          input.Brand,
		Model:          input.Model,
		Description:    input.Description,
		Price:          input.Price,
		AvailableSizes: input.AvailableSizes,
		Colors:         input.Colors,
		ShopID:         shop.ID,
		OwnerID:        identity.ID,
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByID returns a product by id.
func (s *Product) GetByID(ctx context.Context, id string) (model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// List returns a page of products sorted by name. When shopID is set,
// results are narrowed to that shop.
func (s *Product) List(ctx context.Context, shopID string, page model.PageParams) ([]model.Product, error) {
	page, err := normalizePage(page)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if shopID != "" {
		products, err = s.products.ListByShop(ctx, shopID, page)
	} else {
		products, err = s.products.List(ctx, page)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// Update applies a partial mutation to a product owned by the caller.
func (s *Product) Update(ctx context.Context, identity model.TokenUser, id string, update model.ProductUpdate) (model.Product, error) {
	if update.Empty() {
		return model.Product{}, model.ErrEmptyUpdate
	}

	product, err := s.products.Update(ctx, id, identity.ID, update)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product owned by the caller.
func (s *Product) Delete(ctx context.Context, identity model.TokenUser, id string) error {
	if err := s.products.Delete(ctx, id, identity.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// UploadImage stores an image for a product owned by the caller and records
// the storage key on the document. The object is uploaded before the key is
// persisted so a failed upload leaves no dangling reference.
func (s *Product) UploadImage(ctx context.Context, identity model.TokenUser, id string, data io.Reader, size int64, contentType string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if product.OwnerID != identity.ID {
		return model.ErrNotFound
	}

	key := imageKey(id)

	if err := s.files.Upload(ctx, key, data, size, contentType); err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.products.SetImageKey(ctx, id, identity.ID, key); err != nil {
		return fmt.Errorf("failed to set image key: %w", err)
	}

	return nil
}

// DownloadImage streams a product image. A product without an image yields
// model.ErrNotFound.
func (s *Product) DownloadImage(ctx context.Context, id string) (io.ReadCloser, string, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get product: %w", err)
	}
	if product.ImageKey == "" {
		return nil, "", model.ErrNotFound
	}

	rc, contentType, err := s.files.Download(ctx, product.ImageKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download image: %w", err)
	}

	return rc, contentType, nil
}

func imageKey(productID string) string {
	return "products/" + productID
}
