package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/marketplace-server/internal/mocks"
	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/testutil"
)

func newAuthFixture(t *testing.T) (*Auth, *mocks.UserStore, *mocks.TokenManager, *mocks.LinkIssuer, *mocks.Mailer) {
	t.Helper()

	users := &mocks.UserStore{}
	tokens := &mocks.TokenManager{}
	links := &mocks.LinkIssuer{}
	mailer := &mocks.Mailer{}

	auth := NewAuth(users, tokens, links, mailer, AuthConfig{
		BaseURL:       "https://app.example.com",
		ActivationTTL: time.Minute,
		ResetTTL:      time.Minute,
	}, testutil.MakeNoopLogger())

	return auth, users, tokens, links, mailer
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuth_Signup(t *testing.T) {
	auth, users, _, links, mailer := newAuthFixture(t)

	userID := uuid.New()
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		if u.Username != "someuser" || u.Email != "user@example.com" || u.IsActive {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("Str0ng!pass")) == nil
	})).Return(model.User{
		ID:       userID,
		Username: "someuser",
		Email:    "user@example.com",
	}, nil)
	links.On("IssueLink", mock.Anything, "https://app.example.com/auth/activate", mock.MatchedBy(func(p model.LinkPayload) bool {
		return p.UserID == userID && p.Username == "someuser"
	}), time.Minute).Return("https://app.example.com/auth/activate?key=abc", nil)

	sent := make(chan model.MailMessage, 1)
	mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent <- args.Get(1).(model.MailMessage)
	}).Return(nil)

	user, err := auth.Signup(context.Background(), SignupInput{
		Username: "someuser",
		Email:    "user@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	select {
	case msg := <-sent:
		assert.Equal(t, "user@example.com", msg.To)
		assert.Contains(t, msg.HTMLBody, "key=abc")
	case <-time.After(time.Second):
		t.Fatal("activation mail was not dispatched")
	}
	users.AssertExpectations(t)
	links.AssertExpectations(t)
}

func TestAuth_Signup_GeneratesID(t *testing.T) {
	auth, users, _, links, mailer := newAuthFixture(t)

	var inserted model.User
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(model.User)
	}).Return(model.User{}, nil)
	links.On("IssueLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://app.example.com/auth/activate?key=abc", nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := auth.Signup(context.Background(), SignupInput{
		Username: "someuser",
		Email:    "user@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, inserted.ID)
}

func TestAuth_Signup_InvalidInput(t *testing.T) {
	auth, users, _, _, _ := newAuthFixture(t)

	tests := []struct {
		name  string
		input SignupInput
	}{
		{
			name:  "bad username",
			input: SignupInput{Username: "ab", Email: "user@example.com", Password: "Str0ng!pass"},
		},
		{
			name:  "bad email",
			input: SignupInput{Username: "someuser", Email: "nope", Password: "Str0ng!pass"},
		},
		{
			name:  "weak password",
			input: SignupInput{Username: "someuser", Email: "user@example.com", Password: "password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Signup(context.Background(), tt.input)
			assert.ErrorIs(t, err, model.ErrValidation)
		})
	}

	users.AssertNotCalled(t, "Create")
}

func TestAuth_Signup_Duplicate(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	users.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicate)

	_, err := auth.Signup(context.Background(), SignupInput{
		Username: "someuser",
		Email:    "user@example.com",
		Password: "Str0ng!pass",
	})

	assert.ErrorIs(t, err, model.ErrDuplicate)
	links.AssertNotCalled(t, "IssueLink")
}

func TestAuth_Activate(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	userID := uuid.New()
	links.On("Redeem", mock.Anything, "abc").Return(model.LinkPayload{UserID: userID}, nil)
	users.On("Activate", mock.Anything, userID).Return(model.User{ID: userID, IsActive: true}, nil)

	user, err := auth.Activate(context.Background(), "abc")

	require.NoError(t, err)
	assert.True(t, user.IsActive)
}

func TestAuth_Activate_Gone(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	links.On("Redeem", mock.Anything, "abc").Return(model.LinkPayload{}, model.ErrLinkExpired)

	_, err := auth.Activate(context.Background(), "abc")

	assert.ErrorIs(t, err, model.ErrLinkExpired)
	users.AssertNotCalled(t, "Activate")
}

func TestAuth_Login(t *testing.T) {
	hash := func(t *testing.T) string { return hashPassword(t, "Str0ng!pass") }

	t.Run("unknown username", func(t *testing.T) {
		auth, users, _, _, _ := newAuthFixture(t)
		users.On("GetByUsername", mock.Anything, "ghost1").Return(model.User{}, model.ErrNotFound)

		_, err := auth.Login(context.Background(), "ghost1", "Str0ng!pass")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("inactive account checked before password", func(t *testing.T) {
		auth, users, tokens, _, _ := newAuthFixture(t)
		users.On("GetByUsername", mock.Anything, "someuser").Return(model.User{
			Username:       "someuser",
			HashedPassword: hash(t),
			IsActive:       false,
		}, nil)

		_, err := auth.Login(context.Background(), "someuser", "wrong password")

		assert.ErrorIs(t, err, model.ErrNotActive)
		tokens.AssertNotCalled(t, "Issue")
	})

	t.Run("wrong password", func(t *testing.T) {
		auth, users, _, _, _ := newAuthFixture(t)
		users.On("GetByUsername", mock.Anything, "someuser").Return(model.User{
			Username:       "someuser",
			HashedPassword: hash(t),
			IsActive:       true,
		}, nil)

		_, err := auth.Login(context.Background(), "someuser", "Wr0ng!pass")

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("success", func(t *testing.T) {
		auth, users, tokens, _, _ := newAuthFixture(t)
		user := model.User{
			ID:             uuid.New(),
			Username:       "someuser",
			HashedPassword: hash(t),
			IsActive:       true,
		}
		users.On("GetByUsername", mock.Anything, "someuser").Return(user, nil)
		tokens.On("Issue", user).Return("jwt-token", nil)

		token, err := auth.Login(context.Background(), "someuser", "Str0ng!pass")

		require.NoError(t, err)
		assert.Equal(t, "jwt-token", token)
	})
}

func TestAuth_ChangePassword(t *testing.T) {
	identity := model.TokenUser{ID: uuid.New(), Username: "someuser"}

	t.Run("wrong current password", func(t *testing.T) {
		auth, users, _, _, _ := newAuthFixture(t)
		users.On("GetByID", mock.Anything, identity.ID).Return(model.User{
			ID:             identity.ID,
			HashedPassword: hashPassword(t, "Curr3nt!pass"),
		}, nil)

		err := auth.ChangePassword(context.Background(), identity, "Wr0ng!pass", "N3w!passwd")

		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		users.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("success", func(t *testing.T) {
		auth, users, _, _, _ := newAuthFixture(t)
		users.On("GetByID", mock.Anything, identity.ID).Return(model.User{
			ID:             identity.ID,
			HashedPassword: hashPassword(t, "Curr3nt!pass"),
		}, nil)
		users.On("UpdatePassword", mock.Anything, identity.ID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("N3w!passwd")) == nil
		})).Return(nil)

		err := auth.ChangePassword(context.Background(), identity, "Curr3nt!pass", "N3w!passwd")

		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}

func TestAuth_ForgotPassword(t *testing.T) {
	auth, users, _, links, mailer := newAuthFixture(t)

	user := model.User{ID: uuid.New(), Username: "someuser", Email: "user@example.com"}
	users.On("GetByEmail", mock.Anything, "user@example.com").Return(user, nil)
	links.On("IssueLink", mock.Anything, "https://app.example.com/auth/password/reset", mock.Anything, time.Minute).
		Return("https://app.example.com/auth/password/reset?key=abc", nil)

	sent := make(chan model.MailMessage, 1)
	mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent <- args.Get(1).(model.MailMessage)
	}).Return(nil)

	err := auth.ForgotPassword(context.Background(), "user@example.com")

	require.NoError(t, err)
	select {
	case msg := <-sent:
		assert.Equal(t, "user@example.com", msg.To)
	case <-time.After(time.Second):
		t.Fatal("reset mail was not dispatched")
	}
}

func TestAuth_ForgotPassword_UnknownEmail(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(model.User{}, model.ErrNotFound)

	err := auth.ForgotPassword(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, model.ErrNotFound)
	links.AssertNotCalled(t, "IssueLink")
}

func TestAuth_ResetPassword(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	userID := uuid.New()
	links.On("Redeem", mock.Anything, "abc").Return(model.LinkPayload{UserID: userID}, nil)
	users.On("UpdatePassword", mock.Anything, userID, mock.Anything).Return(nil)

	err := auth.ResetPassword(context.Background(), "abc", "N3w!passwd")

	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestAuth_ResetPassword_Gone(t *testing.T) {
	auth, users, _, links, _ := newAuthFixture(t)

	links.On("Redeem", mock.Anything, "abc").Return(model.LinkPayload{}, model.ErrLinkExpired)

	err := auth.ResetPassword(context.Background(), "abc", "N3w!passwd")

	assert.ErrorIs(t, err, model.ErrLinkExpired)
	users.AssertNotCalled(t, "UpdatePassword")
}

func TestAuth_EmailChange(t *testing.T) {
	identity := model.TokenUser{ID: uuid.New(), Username: "someuser", Email: "old@example.com"}

	t.Run("request issues link to new address", func(t *testing.T) {
		auth, _, _, links, mailer := newAuthFixture(t)

		links.On("IssueLink", mock.Anything, "https://app.example.com/auth/update/email", mock.MatchedBy(func(p model.LinkPayload) bool {
			return p.UserID == identity.ID && p.NewEmail == "new@example.com"
		}), time.Minute).Return("https://app.example.com/auth/update/email?key=abc", nil)

		sent := make(chan model.MailMessage, 1)
		mailer.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sent <- args.Get(1).(model.MailMessage)
		}).Return(nil)

		err := auth.RequestEmailChange(context.Background(), identity, "new@example.com")

		require.NoError(t, err)
		select {
		case msg := <-sent:
			assert.Equal(t, "new@example.com", msg.To)
		case <-time.After(time.Second):
			t.Fatal("email change mail was not dispatched")
		}
	})

	t.Run("confirm persists new address", func(t *testing.T) {
		auth, users, _, links, _ := newAuthFixture(t)

		links.On("Redeem", mock.Anything, "abc").Return(model.LinkPayload{
			UserID:   identity.ID,
			NewEmail: "new@example.com",
		}, nil)
		users.On("UpdateEmail", mock.Anything, identity.ID, "new@example.com").Return(nil)

		err := auth.ConfirmEmailChange(context.Background(), "abc")

		require.NoError(t, err)
		users.AssertExpectations(t)
	})
}

func TestAuth_ValidateLink(t *testing.T) {
	auth, _, _, links, _ := newAuthFixture(t)

	links.On("Validate", mock.Anything, "alive").Return(true, nil)
	links.On("Validate", mock.Anything, "dead").Return(false, nil)

	assert.NoError(t, auth.ValidateLink(context.Background(), "alive"))
	assert.ErrorIs(t, auth.ValidateLink(context.Background(), "dead"), model.ErrLinkExpired)
}

func TestAuth_GetUser_MalformedID(t *testing.T) {
	auth, users, _, _, _ := newAuthFixture(t)

	_, err := auth.GetUser(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, model.ErrNotFound)
	users.AssertNotCalled(t, "GetByID")
}
