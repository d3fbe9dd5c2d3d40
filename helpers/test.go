package helpers

import "time"

// TestNow returns a fixed instant (2026-03-05 09:00:00 UTC) for deterministic cache
// TTL tests.
//
// Called from adapters/memcache tests and service tests needing a frozen clock.
func TestNow() time.Time {
	return time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
}
