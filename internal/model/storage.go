package model

import (
	"context"
	"io"
)

// FileStorage defines object storage operations for product images.
type FileStorage interface {
	Upload(ctx context.Context, key string, data io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
