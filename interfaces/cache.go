package interfaces

import (
	"context"
	"time"

	"hrvalidation/domain"
)

// ResultCache stores classified validation results for a short TTL. Implementations
// must be safe for concurrent readers and writers; last-writer-wins per key is
// acceptable. An entry is never returned past its TTL.
//
// Implemented by adapters/memcache (single process) and adapters/myredis (shared).
// Called from service.Gateway; cache errors there are soft — logged and treated as a miss.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . ResultCache
type ResultCache interface {
	// Get returns the cached result for key.
	// Returns: (result, true, nil) on a live entry; (zero, false, nil) on miss or
	// expired entry; (zero, false, error) when the backing store fails.
	Get(ctx context.Context, key domain.CacheKey) (domain.ValidationResult, bool, error)

	// Put stores result under key for ttl. Callers must only pass definitive results
	// (service.Gateway never caches Unavailable).
	Put(ctx context.Context, key domain.CacheKey, result domain.ValidationResult, ttl time.Duration) error

	// Invalidate removes the entry for key. Removing an absent key is not an error.
	Invalidate(ctx context.Context, key domain.CacheKey) error
}
