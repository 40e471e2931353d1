package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-server/internal/mocks"
	"github.com/dtroode/marketplace-server/internal/model"
)

func TestShop_Create(t *testing.T) {
	shops := &mocks.ShopStore{}
	service := NewShop(shops)
	identity := model.TokenUser{ID: uuid.New()}

	shops.On("Create", mock.Anything, mock.MatchedBy(func(s model.Shop) bool {
		return s.Name == "Corner Store" && s.OwnerID == identity.ID
	})).Return(model.Shop{ID: "60f1", Name: "Corner Store", OwnerID: identity.ID}, nil)

	shop, err := service.Create(context.Background(), identity, ShopInput{Name: "Corner Store"})

	require.NoError(t, err)
	assert.Equal(t, "60f1", shop.ID)
	shops.AssertExpectations(t)
}

func TestShop_Create_EmptyName(t *testing.T) {
	shops := &mocks.ShopStore{}
	service := NewShop(shops)

	_, err := service.Create(context.Background(), model.TokenUser{ID: uuid.New()}, ShopInput{})

	assert.ErrorIs(t, err, model.ErrValidation)
	shops.AssertNotCalled(t, "Create")
}

func TestShop_List(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		shops.On("List", mock.Anything, model.PageParams{Page: 1, Limit: model.DefaultPageLimit}).
			Return([]model.Shop{{Name: "a"}}, nil)

		got, err := service.List(context.Background(), "", model.PageParams{})

		require.NoError(t, err)
		assert.Len(t, got, 1)
		shops.AssertExpectations(t)
	})

	t.Run("name search", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		shops.On("SearchByName", mock.Anything, "corner", model.PageParams{Page: 2, Limit: 5}).
			Return([]model.Shop{}, nil)

		_, err := service.List(context.Background(), "corner", model.PageParams{Page: 2, Limit: 5})

		require.NoError(t, err)
		shops.AssertNotCalled(t, "List")
	})

	t.Run("negative page rejected", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		_, err := service.List(context.Background(), "", model.PageParams{Page: -1, Limit: 10})

		assert.ErrorIs(t, err, model.ErrValidation)
		shops.AssertNotCalled(t, "List")
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		_, err := service.List(context.Background(), "", model.PageParams{Page: 1, Limit: -5})

		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestShop_ListMine(t *testing.T) {
	shops := &mocks.ShopStore{}
	service := NewShop(shops)
	identity := model.TokenUser{ID: uuid.New()}

	shops.On("ListByOwner", mock.Anything, identity.ID, model.PageParams{Page: 1, Limit: model.DefaultPageLimit}).
		Return([]model.Shop{{OwnerID: identity.ID}}, nil)

	got, err := service.ListMine(context.Background(), identity, model.PageParams{})

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestShop_Update(t *testing.T) {
	identity := model.TokenUser{ID: uuid.New()}
	name := "Renamed"

	t.Run("empty payload", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		_, err := service.Update(context.Background(), identity, "60f1", model.ShopUpdate{})

		assert.ErrorIs(t, err, model.ErrEmptyUpdate)
		shops.AssertNotCalled(t, "Update")
	})

	t.Run("foreign shop surfaces as missing", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		shops.On("Update", mock.Anything, "60f1", identity.ID, mock.Anything).
			Return(model.Shop{}, model.ErrNotFound)

		_, err := service.Update(context.Background(), identity, "60f1", model.ShopUpdate{Name: &name})

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		shops := &mocks.ShopStore{}
		service := NewShop(shops)

		shops.On("Update", mock.Anything, "60f1", identity.ID, model.ShopUpdate{Name: &name}).
			Return(model.Shop{ID: "60f1", Name: name}, nil)

		shop, err := service.Update(context.Background(), identity, "60f1", model.ShopUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, shop.Name)
	})
}

func TestShop_Delete(t *testing.T) {
	shops := &mocks.ShopStore{}
	service := NewShop(shops)
	identity := model.TokenUser{ID: uuid.New()}

	shops.On("Delete", mock.Anything, "60f1", identity.ID).Return(nil)

	require.NoError(t, service.Delete(context.Background(), identity, "60f1"))
	shops.AssertExpectations(t)
}
