package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hrvalidation/domain"
	"hrvalidation/helpers"
	"hrvalidation/service"

	"github.com/go-redis/redis/v8"
)

// Cache implements interfaces.ResultCache on redis: one key per (service, kind, id)
// under the configured prefix, JSON-marshalled ValidationResult values, expiry handled
// by redis TTLs. Concurrency and the last-writer-wins guarantee come from redis itself.
type Cache struct {
	client redis.UniversalClient
	prefix string
}

// NewCache creates the redis result cache. Panics on nil client or empty prefix.
//
// Parameters: client — shared redis client; prefix — key namespace (cmd/main uses
// "validation").
//
// Called from cmd/main when REDIS_ADDR is configured.
func NewCache(client redis.UniversalClient, prefix string) *Cache {
	return &Cache{
		client: helpers.NilPanic(client, "adapters.myredis.cache.go: redis client is required"),
		prefix: helpers.StrPanic(prefix, "adapters.myredis.cache.go: prefix is required"),
	}
}

// Get returns the cached result for key. redis.Nil (absent or expired key) is a miss,
// not an error; unmarshal failures and redis errors are internal_server_error.
func (c *Cache) Get(ctx context.Context, key domain.CacheKey) (domain.ValidationResult, bool, error) {
	data, err := c.client.Get(ctx, c.generateKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.ValidationResult{}, false, nil
		}
		return domain.ValidationResult{}, false, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read result for key '%s', err: %w", key, err))
	}
	var result domain.ValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.ValidationResult{}, false, service.NewInternalServerError("Redis unmarshal result error", fmt.Errorf("can't unmarshal result for key '%s', err: %w", key, err))
	}
	return result, true, nil
}

// Put stores result under key with the given ttl (redis-native expiry).
func (c *Cache) Put(ctx context.Context, key domain.CacheKey, result domain.ValidationResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return service.NewInternalServerError("Redis marshal result error", fmt.Errorf("can't marshal result for key '%s', err: %w", key, err))
	}
	if err := c.client.Set(ctx, c.generateKey(key), data, ttl).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write result for key '%s', err: %w", key, err))
	}
	return nil
}

// Invalidate removes the key; deleting an absent key is not an error in redis.
func (c *Cache) Invalidate(ctx context.Context, key domain.CacheKey) error {
	if err := c.client.Del(ctx, c.generateKey(key)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete result for key '%s', err: %w", key, err))
	}
	return nil
}

func (c *Cache) generateKey(key domain.CacheKey) string {
	return c.prefix + ":" + key.String()
}
