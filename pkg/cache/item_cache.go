package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "inventory:item"
)

// CachedItem is the denormalized read model stored in Redis. PhotoKey is the
// raw asset reference; the photo URL is always re-derived by the service, so
// the cache never stores URLs.
type CachedItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PhotoKey    string `json:"photo_key"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Key format: "inventory:item:{id}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, id string) (*CachedItem, error) {
	key := c.key(id)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	return &CachedItem{
		ID:          vals["id"],
		Name:        vals["name"],
		Description: vals["description"],
		PhotoKey:    vals["photo_key"],
	}, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID,
		"name", item.Name,
		"description", item.Description,
		"photo_key", item.PhotoKey,
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item. Called on every mutation so stale views are
// never served after an update, photo replace, or delete.
func (c *ItemCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "inventory:item:{id}"
func (c *ItemCache) key(id string) string {
	return fmt.Sprintf("%s:%s", itemCacheKeyPrefix, id)
}
