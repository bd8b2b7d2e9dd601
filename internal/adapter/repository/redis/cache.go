package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache implements usecase.Cache using Redis. Banking status reports are the
// only cached payloads: they are rebuilt from several queries on every read,
// so a short-TTL cache absorbs dashboard polling. Mutations invalidate the
// affected ship-year eagerly; other years of the same ship expire via TTL.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a new Cache. Keys are namespaced under "cache:" so
// flushing the cache never touches idempotency state.
func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		prefix: "cache:",
	}
}

// Get retrieves a value by key. Returns redis.Nil via the client when the
// key is absent; callers treat any error as a cache miss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, c.prefix+key).Result()
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
