package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user accounts.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Activate(ctx context.Context, id uuid.UUID) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
}

// User represents a stored user account. Accounts are created inactive and
// become active once the activation link is redeemed.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	HashedPassword string
	IsActive       bool
	IsSuperuser    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
