package model

import "context"

// ContextManager stores and retrieves the authenticated identity on a context.
type ContextManager interface {
	SetUserToContext(ctx context.Context, user TokenUser) context.Context
	GetUserFromContext(ctx context.Context) (TokenUser, bool)
}
