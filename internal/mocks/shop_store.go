package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/marketplace-server/internal/model"
)

// ShopStore is a testify mock of model.ShopStore.
type ShopStore struct {
	mock.Mock
}

func (m *ShopStore) Create(ctx context.Context, shop model.Shop) (model.Shop, error) {
	args := m.Called(ctx, shop)
	return args.Get(0).(model.Shop), args.Error(1)
}

func (m *ShopStore) GetByID(ctx context.Context, id string) (model.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Shop), args.Error(1)
}

func (m *ShopStore) List(ctx context.Context, page model.PageParams) ([]model.Shop, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *ShopStore) SearchByName(ctx context.Context, name string, page model.PageParams) ([]model.Shop, error) {
	args := m.Called(ctx, name, page)
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *ShopStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, page model.PageParams) ([]model.Shop, error) {
	args := m.Called(ctx, ownerID, page)
	return args.Get(0).([]model.Shop), args.Error(1)
}

func (m *ShopStore) Update(ctx context.Context, id string, ownerID uuid.UUID, update model.ShopUpdate) (model.Shop, error) {
	args := m.Called(ctx, id, ownerID, update)
	return args.Get(0).(model.Shop), args.Error(1)
}

func (m *ShopStore) Delete(ctx context.Context, id string, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
