package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// FileStorage is a testify mock of model.FileStorage.
type FileStorage struct {
	mock.Mock
}

func (m *FileStorage) Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, data, size, contentType)
	return args.Error(0)
}

func (m *FileStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.String(1), args.Error(2)
}

func (m *FileStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
