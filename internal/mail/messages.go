package mail

import (
	"fmt"

	"github.com/dtroode/marketplace-server/internal/model"
)

// ActivationMessage builds the account activation letter.
func ActivationMessage(to, username, link string) model.MailMessage {
	return model.MailMessage{
		To:      to,
		Subject: fmt.Sprintf("Account activation for %s", username),
		HTMLBody: fmt.Sprintf(
			"<p>Hello, %s!</p><p>Follow the link to activate your account: <a href=%q>%s</a></p><p>The link is valid for a limited time and can be used once.</p>",
			username, link, link,
		),
	}
}

// PasswordResetMessage builds the password reset letter.
func PasswordResetMessage(to, username, link string) model.MailMessage {
	return model.MailMessage{
		To:      to,
		Subject: fmt.Sprintf("Password reset requested by %s", username),
		HTMLBody: fmt.Sprintf(
			"<p>Hello, %s!</p><p>Follow the link to reset your password: <a href=%q>%s</a></p><p>If you did not request a reset, ignore this letter.</p>",
			username, link, link,
		),
	}
}

// EmailChangeMessage builds the email change confirmation letter,
// sent to the new address.
func EmailChangeMessage(to, username, link string) model.MailMessage {
	return model.MailMessage{
		To:      to,
		Subject: fmt.Sprintf("Change email requested by %s", username),
		HTMLBody: fmt.Sprintf(
			"<p>Hello, %s!</p><p>Follow the link to confirm your new email address: <a href=%q>%s</a></p><p>If you did not request a change, ignore this letter.</p>",
			username, link, link,
		),
	}
}
