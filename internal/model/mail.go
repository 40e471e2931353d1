package model

import "context"

// Mailer delivers transactional mail. Delivery runs detached from the request
// that triggered it; failures are logged by the caller, never surfaced.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}

// MailMessage is a rendered outbound message.
type MailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}
