// Package validation checks credential fields before they reach storage.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"unicode"

	"github.com/dtroode/marketplace-server/internal/model"
)

var usernameRe = regexp.MustCompile(`^[\w.@_-]{6,32}$`)

const (
	passwordMinLen = 8
	passwordMaxLen = 64
)

// Username checks that a username is 6-32 characters of letters,
// digits, and the symbols . @ _ -.
func Username(username string) error {
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("%w: username must be 6-32 characters of letters, digits, '.', '@', '_', '-'", model.ErrValidation)
	}
	return nil
}

// Password checks length and character class requirements: at least one
// uppercase letter, one lowercase letter, one digit, and one special
// character.
func Password(password string) error {
	runes := []rune(password)
	if len(runes) < passwordMinLen || len(runes) > passwordMaxLen {
		return fmt.Errorf("%w: password must be %d-%d characters", model.ErrValidation, passwordMinLen, passwordMaxLen)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return fmt.Errorf("%w: password must contain an uppercase letter, a lowercase letter, a digit, and a special character", model.ErrValidation)
	}

	return nil
}

// Email checks that the address parses as a bare RFC 5322 address.
func Email(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: invalid email address", model.ErrValidation)
	}
	return nil
}
