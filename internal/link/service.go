package link

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketplace-server/internal/logger"
	"github.com/dtroode/marketplace-server/internal/model"
)

var _ model.LinkIssuer = (*Service)(nil)

// Service issues and consumes single-use temporary links. The payload lives in
// the key-value cache under an unguessable key until redeemed or expired.
type Service struct {
	cache  model.KeyValueCache
	logger *logger.Logger
}

// NewService creates a temporary-link service backed by the given cache.
func NewService(cache model.KeyValueCache, logger *logger.Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// IssueLink caches payload under a fresh random key with the given TTL and
// returns baseURL with the key attached as a query parameter.
func (s *Service) IssueLink(ctx context.Context, baseURL string, payload model.LinkPayload, ttl time.Duration) (string, error) {
	key := uuid.NewString()

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal link payload: %w", err)
	}

	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		return "", fmt.Errorf("failed to cache link payload: %w", err)
	}

	s.logger.Debug("Link service: issued temporary link",
		"user_id", payload.UserID,
		"ttl", ttl)

	return fmt.Sprintf("%s?key=%s", baseURL, key), nil
}

// Redeem consumes a link key exactly once. The read and delete are a single
// atomic cache operation, so a second redemption of the same key fails with
// model.ErrLinkExpired even under concurrent requests.
func (s *Service) Redeem(ctx context.Context, key string) (model.LinkPayload, error) {
	data, err := s.cache.GetDel(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrLinkExpired) {
			return model.LinkPayload{}, model.ErrLinkExpired
		}
		return model.LinkPayload{}, fmt.Errorf("failed to consume link key: %w", err)
	}

	var payload model.LinkPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.LinkPayload{}, fmt.Errorf("failed to unmarshal link payload: %w", err)
	}

	s.logger.Debug("Link service: redeemed temporary link",
		"user_id", payload.UserID)

	return payload, nil
}

// Validate reports whether a link key is still alive without consuming it.
// Used by the pre-validate endpoints so a client can check a link before
// rendering a confirmation form.
func (s *Service) Validate(ctx context.Context, key string) (bool, error) {
	alive, err := s.cache.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check link key: %w", err)
	}
	return alive, nil
}
