package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/dtroode/marketplace-server/internal/model"
)

var _ model.Mailer = (*SMTPMailer)(nil)

// SMTPMailer delivers transactional mail over SMTP.
type SMTPMailer struct {
	client *gomail.Client
	sender string
}

// NewSMTPMailer creates a mailer connecting to the given SMTP server.
func NewSMTPMailer(host string, port int, username, password, sender string) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPMailer{
		client: client,
		sender: sender,
	}, nil
}

// Send delivers a single message.
func (m *SMTPMailer) Send(ctx context.Context, msg model.MailMessage) error {
	message := gomail.NewMsg()

	if err := message.From(m.sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := message.To(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
