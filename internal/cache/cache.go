// Package cache holds upstream payloads in memory for a fixed time-to-live.
//
// Entries expire lazily: an expired entry stays in the map until it is
// overwritten, but is never returned. There is no size bound and no
// single-flight; concurrent misses for one key each call their fetch
// function and the last successful write wins.
package cache

import (
	"context"
	"sync"
	"time"
)

// FetchFunc produces a payload on a cache miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

type entry struct {
	payload []byte
	expires time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock sets the time source used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload stored under key if it has not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}
	return e.payload, true
}

// Set stores payload under key until now+ttl, replacing any previous entry.
func (c *Cache) Set(key string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	c.entries[key] = entry{payload: payload, expires: c.now().Add(ttl)}
	c.mu.Unlock()
}

// GetOrFetch returns the live entry for key, or calls fetch and stores its
// result for ttl. Fetch errors are returned as-is and nothing is stored.
// hit reports whether the payload came from the cache.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (payload []byte, hit bool, err error) {
	if p, ok := c.Get(key); ok {
		return p, true, nil
	}

	p, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	c.Set(key, p, ttl)
	return p, false, nil
}

// Len returns the number of physically stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
