// Package cache provides a small JSON cache over Redis. The zero client is a
// valid no-op cache, which is how the service runs in development without
// REDIS_URL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when a key is absent or the cache is disabled.
var ErrMiss = errors.New("cache miss")

// Cache stores JSON-encoded values in Redis.
type Cache struct {
	client *redis.Client
}

// New creates a Cache backed by the given client. A nil client disables the
// cache.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Enabled reports whether a Redis backend is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON reads a key and unmarshals it into dest. Returns ErrMiss when the
// key is absent or the cache is disabled.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	if !c.Enabled() {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON marshals value and stores it under key with the given TTL. A zero
// TTL stores the key without expiry.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes a key. Missing keys are not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

// Ping verifies the backend connection. A disabled cache is always healthy.
func (c *Cache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
