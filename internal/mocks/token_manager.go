package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/marketplace-server/internal/model"
)

// TokenManager is a testify mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) Issue(user model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) Decode(token string) (model.TokenUser, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenUser), args.Error(1)
}
