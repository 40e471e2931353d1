package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for product documents.
// Ownership filtering follows the same contract as ShopStore.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, page PageParams) ([]Product, error)
	ListByShop(ctx context.Context, shopID string, page PageParams) ([]Product, error)
	Update(ctx context.Context, id string, ownerID uuid.UUID, update ProductUpdate) (Product, error)
	SetImageKey(ctx context.Context, id string, ownerID uuid.UUID, imageKey string) error
	Delete(ctx context.Context, id string, ownerID uuid.UUID) error
}

// Product represents a product document belonging to a shop.
type Product struct {
	ID             string
	Name           string
	Brand          string
	Model          string
	Description    string
	Price          float64
	AvailableSizes []string
	Colors         []string
	Rating         *float64
	ImageKey       string
	ShopID         string
	OwnerID        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductUpdate carries a partial product mutation. Nil fields are left untouched.
type ProductUpdate struct {
	Name           *string
	Brand          *string
	Model          *string
	Description    *string
	Price          *float64
	AvailableSizes *[]string
	Colors         *[]string
	Rating         *float64
}

// Empty reports whether the update carries no fields.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Brand == nil && u.Model == nil && u.Description == nil &&
		u.Price == nil && u.AvailableSizes == nil && u.Colors == nil && u.Rating == nil
}
