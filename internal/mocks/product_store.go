package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/marketplace-server/internal/model"
)

// ProductStore is a testify mock of model.ProductStore.
type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) Create(ctx context.Context, product model.Product) (model.Product, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) GetByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) List(ctx context.Context, page model.PageParams) ([]model.Product, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *ProductStore) ListByShop(ctx context.Context, shopID string, page model.PageParams) ([]model.Product, error) {
	args := m.Called(ctx, shopID, page)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *ProductStore) Update(ctx context.Context, id string, ownerID uuid.UUID, update model.ProductUpdate) (model.Product, error) {
	args := m.Called(ctx, id, ownerID, update)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *ProductStore) SetImageKey(ctx context.Context, id string, ownerID uuid.UUID, imageKey string) error {
	args := m.Called(ctx, id, ownerID, imageKey)
	return args.Error(0)
}

func (m *ProductStore) Delete(ctx context.Context, id string, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
