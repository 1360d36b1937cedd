package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ViewCache is a JSON-backed Redis cache bound to one representation type.
// Repositories consult it before Postgres and refresh it after every
// mutation. A zero TTL means keys do not expire.
type ViewCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewViewCache returns a ViewCache whose keys are prefix + id.
func NewViewCache[T any](client *redis.Client, prefix string, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, prefix: prefix, ttl: ttl}
}

// Get returns the cached value for id, or (nil, false) on a miss. A nil
// receiver or deserialisation failure is treated as a miss so the caller
// falls through to the database.
func (c *ViewCache[T]) Get(ctx context.Context, id string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.prefix+id).Result()
	if err != nil {
		return nil, false
	}
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, false
	}
	return &v, true
}

// Set stores value under id. Cache write failures are logged, not returned;
// Postgres stays the source of truth.
func (c *ViewCache[T]) Set(ctx context.Context, id string, value *T) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("viewcache: marshal error for key %s%s: %v", c.prefix, id, err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+id, data, c.ttl).Err(); err != nil {
		log.Printf("viewcache: write error for key %s%s: %v", c.prefix, id, err)
	}
}

// Delete removes the entry for id.
func (c *ViewCache[T]) Delete(ctx context.Context, id string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, c.prefix+id).Err(); err != nil {
		log.Printf("viewcache: delete error for key %s%s: %v", c.prefix, id, err)
	}
}
