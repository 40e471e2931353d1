package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/marketplace-server/internal/model"
)

// Mailer is a testify mock of model.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, msg model.MailMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
