package model

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist,
	// or when an ownership-filtered mutation matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("already exists")
	// ErrNotActive is returned when an account has not redeemed its activation link.
	ErrNotActive = errors.New("account not activated")
	// ErrInvalidCredentials is returned on a password mismatch.
	ErrInvalidCredentials = errors.New("incorrect password")
	// ErrInvalidToken is returned when a session token fails signature or expiry checks.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrLinkExpired is returned when a temporary link key is missing from the
	// cache: never issued, expired, or already consumed.
	ErrLinkExpired = errors.New("link expired or already used")
	// ErrValidation is returned for malformed client input.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyUpdate is returned when an update payload contains no fields.
	ErrEmptyUpdate = errors.New("empty update payload")
)
