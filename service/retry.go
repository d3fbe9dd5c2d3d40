package service

import (
	"context"
	"time"
)

// WithRetries runs fn up to maxAttempts times, sleeping delay between attempts. Only a
// non-nil error from fn is retried: a transport failure may succeed on a fresh attempt,
// while a definitive outcome (found / not found) returns immediately. After the last
// attempt the final error is returned unchanged so callers can classify it.
//
// The delay honours ctx: cancellation during the sleep aborts with ctx.Err(). A
// maxAttempts below 1 is treated as 1.
//
// Called from Gateway.Validate and Gateway.ValidateMany around transport lookups.
func WithRetries[T any](ctx context.Context, maxAttempts int, delay time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var out T
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return out, ctx.Err()
			case <-timer.C:
			}
		}
		out, err = fn(ctx)
		if err == nil {
			return out, nil
		}
	}
	return out, err
}
