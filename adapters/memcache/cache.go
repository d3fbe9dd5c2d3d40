// Package memcache is the in-process result cache: a mutex-guarded map with lazy
// TTL eviction on read. It is the default cache when no REDIS_ADDR is configured.
package memcache

import (
	"context"
	"sync"
	"time"

	"hrvalidation/domain"
	"hrvalidation/helpers"
)

// entry is one cached result with its insertion time and TTL.
type entry struct {
	result     domain.ValidationResult
	insertedAt time.Time
	ttl        time.Duration
}

// Cache implements interfaces.ResultCache in memory. Expired entries behave as absent
// and are removed on the read that observes them; at this scale no background sweep is
// needed. Safe for concurrent use; last-writer-wins per key.
type Cache struct {
	now func() time.Time

	mu      sync.RWMutex
	entries map[domain.CacheKey]entry
}

// New creates an empty cache. The now func supplies the clock (time.Now in prod,
// a fixed func in tests). Panics on nil now.
//
// Called from cmd/main when REDIS_ADDR is not set, and from tests.
func New(now func() time.Time) *Cache {
	return &Cache{
		now:     helpers.NilPanic(now, "adapters.memcache.cache.go: now is required"),
		entries: make(map[domain.CacheKey]entry),
	}
}

// Get returns the live entry for key. An entry past its TTL is deleted and reported
// as a miss. Never returns an error.
func (c *Cache) Get(_ context.Context, key domain.CacheKey) (domain.ValidationResult, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return domain.ValidationResult{}, false, nil
	}
	if c.expired(e) {
		c.mu.Lock()
		// Re-check under the write lock: a concurrent Put may have refreshed the entry.
		if current, ok := c.entries[key]; ok && c.expired(current) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return domain.ValidationResult{}, false, nil
	}
	return e.result, true, nil
}

// Put stores result under key for ttl, replacing any previous entry. A non-positive
// ttl disables expiry for the entry.
func (c *Cache) Put(_ context.Context, key domain.CacheKey, result domain.ValidationResult, ttl time.Duration) error {
	c.mu.Lock()
	c.entries[key] = entry{result: result, insertedAt: c.now(), ttl: ttl}
	c.mu.Unlock()
	return nil
}

// Invalidate removes the entry for key; removing an absent key is a no-op.
func (c *Cache) Invalidate(_ context.Context, key domain.CacheKey) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included (they are evicted
// lazily). Used by tests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) expired(e entry) bool {
	return e.ttl > 0 && c.now().Sub(e.insertedAt) >= e.ttl
}
