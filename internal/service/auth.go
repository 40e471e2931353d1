package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/marketplace-server/internal/logger"
	"github.com/dtroode/marketplace-server/internal/mail"
	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/validation"
)

const mailTimeout = 10 * time.Second

// AuthConfig carries link destinations and lifetimes for auth workflows.
type AuthConfig struct {
	// BaseURL is the public address of the service, without trailing slash.
	BaseURL       string
	ActivationTTL time.Duration
	ResetTTL      time.Duration
}

// Auth implements signup, login, and the temporary-link workflows:
// account activation, password reset, and email change.
type Auth struct {
	users  model.UserStore
	tokens model.TokenManager
	links  model.LinkIssuer
	mailer model.Mailer
	config AuthConfig
	logger *logger.Logger
}

// NewAuth creates an auth service.
func NewAuth(
	users model.UserStore,
	tokens model.TokenManager,
	links model.LinkIssuer,
	mailer model.Mailer,
	config AuthConfig,
	l *logger.Logger,
) *Auth {
	return &Auth{
		users:  users,
		tokens: tokens,
		links:  links,
		mailer: mailer,
		config: config,
		logger: l,
	}
}

// SignupInput carries the fields required to register an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// Signup registers an inactive account and dispatches an activation letter.
// A username or email collision yields model.ErrDuplicate.
func (s *Auth) Signup(ctx context.Context, input SignupInput) (model.User, error) {
	if err := validation.Username(input.Username); err != nil {
		return model.User{}, err
	}
	if err := validation.Email(input.Email); err != nil {
		return model.User{}, err
	}
	if err := validation.Password(input.Password); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, model.User{
		ID:             uuid.New(),
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: string(hash),
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.sendActivationLink(ctx, user)

	return user, nil
}

// Activate redeems an activation key and marks the account active.
// A missing or already consumed key yields model.ErrLinkExpired.
func (s *Auth) Activate(ctx context.Context, key string) (model.User, error) {
	payload, err := s.links.Redeem(ctx, key)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to redeem activation key: %w", err)
	}

	user, err := s.users.Activate(ctx, payload.UserID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to activate user: %w", err)
	}

	return user, nil
}

// ResendActivation issues a fresh activation link for the account registered
// under email. An unknown email yields model.ErrNotFound.
func (s *Auth) ResendActivation(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	s.sendActivationLink(ctx, user)

	return nil
}

// Login verifies credentials and issues a session token. Checks run in a
// fixed order: unknown username yields model.ErrNotFound, an inactive
// account model.ErrNotActive, a password mismatch model.ErrInvalidCredentials.
func (s *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if !user.IsActive {
		return "", model.ErrNotActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one.
func (s *Auth) ChangePassword(ctx context.Context, identity model.TokenUser, currentPassword, newPassword string) error {
	if err := validation.Password(newPassword); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, identity.ID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(currentPassword)); err != nil {
		return model.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ForgotPassword issues a password reset link for the account registered
// under email. An unknown email yields model.ErrNotFound.
func (s *Auth) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	link, err := s.links.IssueLink(ctx, s.config.BaseURL+"/auth/password/reset", model.LinkPayload{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, s.config.ResetTTL)
	if err != nil {
		return fmt.Errorf("failed to issue reset link: %w", err)
	}

	s.dispatchMail(mail.PasswordResetMessage(user.Email, user.Username, link))

	return nil
}

// ResetPassword redeems a reset key and persists the new password.
func (s *Auth) ResetPassword(ctx context.Context, key, newPassword string) error {
	if err := validation.Password(newPassword); err != nil {
		return err
	}

	payload, err := s.links.Redeem(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to redeem reset key: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, payload.UserID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// RequestEmailChange issues a confirmation link carrying the requested
// address and mails it to that address.
func (s *Auth) RequestEmailChange(ctx context.Context, identity model.TokenUser, newEmail string) error {
	if err := validation.Email(newEmail); err != nil {
		return err
	}

	link, err := s.links.IssueLink(ctx, s.config.BaseURL+"/auth/update/email", model.LinkPayload{
		UserID:   identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
		NewEmail: newEmail,
	}, s.config.ResetTTL)
	if err != nil {
		return fmt.Errorf("failed to issue email change link: %w", err)
	}

	s.dispatchMail(mail.EmailChangeMessage(newEmail, identity.Username, link))

	return nil
}

// ConfirmEmailChange redeems an email change key and persists the new address.
func (s *Auth) ConfirmEmailChange(ctx context.Context, key string) error {
	payload, err := s.links.Redeem(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to redeem email change key: %w", err)
	}

	if err := s.users.UpdateEmail(ctx, payload.UserID, payload.NewEmail); err != nil {
		return fmt.Errorf("failed to update email: %w", err)
	}

	return nil
}

// ValidateLink reports whether a key is still redeemable, without consuming it.
func (s *Auth) ValidateLink(ctx context.Context, key string) error {
	alive, err := s.links.Validate(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to validate key: %w", err)
	}
	if !alive {
		return model.ErrLinkExpired
	}
	return nil
}

// GetUser returns the public account record by id. A malformed id is
// indistinguishable from a missing account.
func (s *Auth) GetUser(ctx context.Context, id string) (model.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return model.User{}, model.ErrNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Auth) sendActivationLink(ctx context.Context, user model.User) {
	link, err := s.links.IssueLink(ctx, s.config.BaseURL+"/auth/activate", model.LinkPayload{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, s.config.ActivationTTL)
	if err != nil {
		s.logger.Error("failed to issue activation link", "error", err, "user_id", user.ID)
		return
	}

	s.dispatchMail(mail.ActivationMessage(user.Email, user.Username, link))
}

// dispatchMail sends a letter detached from the request. Failures are
// logged and never surfaced to the client.
func (s *Auth) dispatchMail(msg model.MailMessage) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
		defer cancel()

		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.Error("failed to send mail", "error", err, "to", msg.To, "subject", msg.Subject)
		}
	}()
}
