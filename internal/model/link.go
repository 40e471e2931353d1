package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KeyValueCache defines the cache operations backing temporary links.
// Expiry is delegated entirely to the cache server.
type KeyValueCache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// GetDel atomically reads and deletes a key so that concurrent
	// redemptions of the same key cannot both succeed.
	// Returns ErrLinkExpired when the key is absent.
	GetDel(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

// LinkIssuer creates and consumes single-use temporary links.
type LinkIssuer interface {
	IssueLink(ctx context.Context, baseURL string, payload LinkPayload, ttl time.Duration) (string, error)
	Redeem(ctx context.Context, key string) (LinkPayload, error)
	Validate(ctx context.Context, key string) (bool, error)
}

// LinkPayload is the state cached under a temporary link key.
type LinkPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	NewEmail string    `json:"new_email,omitempty"`
}
