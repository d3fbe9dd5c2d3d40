package memcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"hrvalidation/domain"
	"hrvalidation/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(id string) domain.CacheKey {
	return domain.CacheKey{Service: domain.ServiceAuth, Kind: domain.KindEmployee, ID: id}
}

func TestNew_PanicsOnNilClock(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestCache_PutGet(t *testing.T) {
	cache := New(helpers.TestNow)
	ctx := context.Background()
	want := domain.ValidationResult{Status: domain.StatusValid, Attributes: domain.Attributes{"id": "EMP-001"}}

	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), want, time.Minute))

	got, ok, err := cache.Get(ctx, testKey("EMP-001"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestCache_GetMiss(t *testing.T) {
	cache := New(helpers.TestNow)

	_, ok, err := cache.Get(context.Background(), testKey("absent"))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_KeysAreIndependent(t *testing.T) {
	cache := New(helpers.TestNow)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, time.Minute))
	otherKind := domain.CacheKey{Service: domain.ServiceAuth, Kind: domain.KindUser, ID: "EMP-001"}

	_, ok, err := cache.Get(ctx, otherKind)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_TTLExpiry(t *testing.T) {
	now := helpers.TestNow()
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	advance := func(d time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(d)
	}

	cache := New(clock)
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, 5*time.Minute))

	t.Run("live_before_ttl", func(t *testing.T) {
		advance(4 * time.Minute)
		_, ok, err := cache.Get(ctx, testKey("EMP-001"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired_at_ttl", func(t *testing.T) {
		advance(time.Minute)
		_, ok, err := cache.Get(ctx, testKey("EMP-001"))
		require.NoError(t, err)
		assert.False(t, ok)
		// The read that observed the expiry also evicted the entry.
		assert.Zero(t, cache.Len())
	})
}

func TestCache_NonPositiveTTLNeverExpires(t *testing.T) {
	now := helpers.TestNow()
	cache := New(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, 0))
	now = now.Add(1000 * time.Hour)

	_, ok, err := cache.Get(ctx, testKey("EMP-001"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_PutReplacesEntry(t *testing.T) {
	cache := New(helpers.TestNow)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusNotFound}, time.Minute))
	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, time.Minute))

	got, ok, err := cache.Get(ctx, testKey("EMP-001"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.StatusValid, got.Status)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Invalidate(t *testing.T) {
	cache := New(helpers.TestNow)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, time.Minute))
	require.NoError(t, cache.Invalidate(ctx, testKey("EMP-001")))

	_, ok, err := cache.Get(ctx, testKey("EMP-001"))
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating an absent key is a no-op.
	require.NoError(t, cache.Invalidate(ctx, testKey("absent")))
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := New(time.Now)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = cache.Put(ctx, testKey("EMP-001"), domain.ValidationResult{Status: domain.StatusValid}, time.Minute)
				_, _, _ = cache.Get(ctx, testKey("EMP-001"))
				_ = cache.Invalidate(ctx, testKey("EMP-001"))
			}
		}()
	}
	wg.Wait()
}
