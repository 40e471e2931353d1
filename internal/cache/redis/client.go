package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dtroode/marketplace-server/internal/model"
)

// Internal adapter interface to enable mocking without a real Redis server.
type redisAPI interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

var _ model.KeyValueCache = (*Client)(nil)

// Client implements model.KeyValueCache on a Redis server.
type Client struct {
	api redisAPI
}

// NewClient creates a cache client using a real *redis.Client instance.
func NewClient(client *redis.Client) *Client {
	return NewClientWithAPI(client)
}

// NewClientWithAPI allows injecting a mockable API (used in tests).
func NewClientWithAPI(api redisAPI) *Client {
	return &Client{api: api}
}

// Set stores value under key with the given TTL.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.api.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache key: %w", err)
	}
	return nil
}

// GetDel atomically reads and deletes key. A missing key, whether expired or
// never issued, yields model.ErrLinkExpired.
func (c *Client) GetDel(ctx context.Context, key string) ([]byte, error) {
	val, err := c.api.GetDel(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrLinkExpired
		}
		return nil, fmt.Errorf("failed to consume key: %w", err)
	}
	return val, nil
}

// Exists reports whether key is still alive without consuming it.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.api.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check key: %w", err)
	}
	return n > 0, nil
}

// Ping verifies connectivity to the cache server.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.api.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping cache: %w", err)
	}
	return nil
}
