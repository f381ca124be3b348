package service

import (
	"context"
	"encoding/json"
	"sync"
)

// Cache keys for list responses.
const (
	cacheKeyCategories = "categories:all"
	cacheKeyPages      = "pages:all"
)

// Cacher is the subset of the response cache the services use.
type Cacher interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// ResponseCache fronts a Cacher for the list endpoints. Every invalidation bumps a
// generation; a fill whose read started in an older generation is dropped, so a list
// read that raced a write is never stored. One ResponseCache must be shared by all
// services writing to the same keys. A nil *ResponseCache disables caching.
type ResponseCache struct {
	store Cacher

	mu  sync.Mutex
	gen uint64
}

// NewResponseCache wraps store. It returns nil when store is nil.
func NewResponseCache(store Cacher) *ResponseCache {
	if store == nil {
		return nil
	}
	return &ResponseCache{store: store}
}

// generation must be taken before the store read whose result will be cached.
func (c *ResponseCache) generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// read decodes the entry under key into dst and reports whether it was a hit.
// Cache faults count as misses.
func (c *ResponseCache) read(ctx context.Context, key string, dst interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.store.Get(ctx, key)
	if err != nil || raw == nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// write stores v under key unless an invalidation happened since gen was taken.
func (c *ResponseCache) write(ctx context.Context, key string, gen uint64, v interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	_ = c.store.Set(ctx, key, raw)
}

func (c *ResponseCache) invalidate(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	_ = c.store.Delete(ctx, keys...)
}
