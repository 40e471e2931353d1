package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/marketplace-server/internal/model"
)

// LinkIssuer is a testify mock of model.LinkIssuer.
type LinkIssuer struct {
	mock.Mock
}

func (m *LinkIssuer) IssueLink(ctx context.Context, baseURL string, payload model.LinkPayload, ttl time.Duration) (string, error) {
	args := m.Called(ctx, baseURL, payload, ttl)
	return args.String(0), args.Error(1)
}

func (m *LinkIssuer) Redeem(ctx context.Context, key string) (model.LinkPayload, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.LinkPayload), args.Error(1)
}

func (m *LinkIssuer) Validate(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
