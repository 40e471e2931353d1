package link

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketplace-server/internal/mocks"
	"github.com/dtroode/marketplace-server/internal/model"
	"github.com/dtroode/marketplace-server/internal/testutil"
)

func TestService_IssueLink(t *testing.T) {
	ctx := context.Background()
	cache := &mocks.KeyValueCache{}
	payload := model.LinkPayload{
		UserID:   uuid.New(),
		Username: "alice01",
		Email:    "alice@example.com",
	}

	var cachedKey string
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).
		Run(func(args mock.Arguments) {
			cachedKey = args.String(1)

			var got model.LinkPayload
			require.NoError(t, json.Unmarshal(args.Get(2).([]byte), &got))
			assert.Equal(t, payload, got)
		}).
		Return(nil)

	s := NewService(cache, testutil.MakeNoopLogger())

	url, err := s.IssueLink(ctx, "http://localhost:8080/auth/activate", payload, time.Minute)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "http://localhost:8080/auth/activate?key="))
	assert.Equal(t, "http://localhost:8080/auth/activate?key="+cachedKey, url)

	// key must be a well-formed UUID, not something guessable
	_, err = uuid.Parse(cachedKey)
	require.NoError(t, err)
}

func TestService_Redeem(t *testing.T) {
	ctx := context.Background()
	cache := &mocks.KeyValueCache{}
	payload := model.LinkPayload{
		UserID:   uuid.New(),
		Username: "alice01",
		Email:    "alice@example.com",
		NewEmail: "alice-new@example.com",
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	cache.On("GetDel", mock.Anything, "some-key").Return(data, nil)

	s := NewService(cache, testutil.MakeNoopLogger())

	got, err := s.Redeem(ctx, "some-key")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestService_Redeem_ExpiredOrConsumed(t *testing.T) {
	ctx := context.Background()
	cache := &mocks.KeyValueCache{}
	cache.On("GetDel", mock.Anything, "gone-key").Return(nil, model.ErrLinkExpired)

	s := NewService(cache, testutil.MakeNoopLogger())

	_, err := s.Redeem(ctx, "gone-key")
	require.ErrorIs(t, err, model.ErrLinkExpired)
}

func TestService_Validate(t *testing.T) {
	ctx := context.Background()
	cache := &mocks.KeyValueCache{}
	cache.On("Exists", mock.Anything, "alive-key").Return(true, nil)
	cache.On("Exists", mock.Anything, "dead-key").Return(false, nil)

	s := NewService(cache, testutil.MakeNoopLogger())

	alive, err := s.Validate(ctx, "alive-key")
	require.NoError(t, err)
	assert.True(t, alive)

	alive, err = s.Validate(ctx, "dead-key")
	require.NoError(t, err)
	assert.False(t, alive)

	// Validate never consumes
	cache.AssertNotCalled(t, "GetDel", mock.Anything, mock.Anything)
}
