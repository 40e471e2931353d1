package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShopStore defines persistence operations for shop documents.
//
// Update and Delete filter by (id, owner) jointly: a mismatch in either is
// indistinguishable from absence and surfaces as ErrNotFound.
type ShopStore interface {
	Create(ctx context.Context, shop Shop) (Shop, error)
	GetByID(ctx context.Context, id string) (Shop, error)
	List(ctx context.Context, page PageParams) ([]Shop, error)
	SearchByName(ctx context.Context, name string, page PageParams) ([]Shop, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page PageParams) ([]Shop, error)
	Update(ctx context.Context, id string, ownerID uuid.UUID, update ShopUpdate) (Shop, error)
	Delete(ctx context.Context, id string, ownerID uuid.UUID) error
}

// Shop represents a shop document.
type Shop struct {
	ID           string
	Name         string
	Address      string
	PhoneNumbers []string
	Emails       []string
	Links        map[string]string
	OwnerID      uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ShopUpdate carries a partial shop mutation. Nil fields are left untouched.
type ShopUpdate struct {
	Name         *string
	Address      *string
	PhoneNumbers *[]string
	Emails       *[]string
	Links        *map[string]string
}

// Empty reports whether the update carries no fields.
func (u ShopUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.PhoneNumbers == nil &&
		u.Emails == nil && u.Links == nil
}
