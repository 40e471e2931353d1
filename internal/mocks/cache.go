package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// KeyValueCache is a testify mock of model.KeyValueCache.
type KeyValueCache struct {
	mock.Mock
}

func (m *KeyValueCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *KeyValueCache) GetDel(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *KeyValueCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *KeyValueCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
