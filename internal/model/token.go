package model

import "github.com/google/uuid"

// TokenManager issues and validates session tokens.
type TokenManager interface {
	Issue(user User) (string, error)
	Decode(token string) (TokenUser, error)
}

// TokenUser is the identity carried by a verified session token.
type TokenUser struct {
	ID       uuid.UUID
	Username string
	Email    string
}
