package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Sentinel checks
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache stores JSON values in Redis under a key namespace.
// A nil *Cache or one without a client is a valid, always-missing cache.
type Cache struct {
	rdb       *redis.Client
	namespace string
}

// NewCache returns a Cache over rdb. rdb may be nil to disable caching.
func NewCache(rdb *redis.Client, namespace string) *Cache {
	return &Cache{rdb: rdb, namespace: namespace}
}

// Enabled reports whether the cache talks to Redis.
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Key prefixes k with the namespace.
func (c *Cache) Key(k string) string {
	if c == nil || c.namespace == "" {
		return k
	}
	return c.namespace + ":" + k
}

// Get retrieves a value from Redis and unmarshals it into dest
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, c.Key(key)).Bytes() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err // Corrupt entry counts as an error, not a hit
	}
	return true, nil
}

// Set sets a value in Redis with a specified TTL
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.Key(key), b, ttl).Err() // Set value in Redis with TTL
}

// Delete deletes a key from Redis
func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Del(ctx, c.Key(key)).Err()
}

// Generation returns the counter stored at key, 0 when it was never bumped.
func (c *Cache) Generation(ctx context.Context, key string) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	gen, err := c.rdb.Get(ctx, c.Key(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Bump increments the counter at key so entries derived from the previous
// generation are no longer read.
func (c *Cache) Bump(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Incr(ctx, c.Key(key)).Err()
}
