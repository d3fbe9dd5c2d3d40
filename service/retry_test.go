package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetries_FirstAttemptSucceeds(t *testing.T) {
	calls := 0
	out, err := WithRetries(context.Background(), 3, 0, func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 1, calls)
}

func TestWithRetries_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	out, err := WithRetries(context.Background(), 3, 0, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, out)
	assert.Equal(t, 3, calls)
}

func TestWithRetries_ExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("still down")
	calls := 0
	_, err := WithRetries(context.Background(), 3, 0, func(context.Context) (int, error) {
		calls++
		return 0, wantErr
	})
	assert.Same(t, wantErr, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetries_MaxAttemptsBelowOne(t *testing.T) {
	calls := 0
	_, err := WithRetries(context.Background(), 0, 0, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetries_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := WithRetries(ctx, 5, time.Second, func(context.Context) (int, error) {
		calls++
		return 0, errors.New("transient")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
