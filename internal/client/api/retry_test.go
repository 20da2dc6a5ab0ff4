package api

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{Initial: time.Millisecond, Max: 4 * time.Millisecond, MaxRetries: 5}
}

func TestRetrier_BackoffSchedule(t *testing.T) {
	var delays []time.Duration
	var attempts []int
	r := NewRetrier(fastRetry(), func(attempt int, delay time.Duration, err error) {
		attempts = append(attempts, attempt)
		delays = append(delays, delay)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return fmt.Errorf("%w: connection refused", ErrUnavailable)
	})

	require.ErrorIs(t, err, ErrRetriesExhausted)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 6, calls, "one attempt plus five retries")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, attempts)
	assert.Equal(t, []time.Duration{
		time.Millisecond,
		2 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
		4 * time.Millisecond,
	}, delays)
}

func TestRetrier_DefaultSchedule(t *testing.T) {
	cfg := DefaultRetryConfig()
	b := NewRetrier(cfg, nil).newBackOff(context.Background())
	b.Reset()

	var got []time.Duration
	for i := 0; i < cfg.MaxRetries; i++ {
		got = append(got, b.NextBackOff())
	}
	assert.Equal(t, []time.Duration{
		time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second,
	}, got)
}

func TestRetrier_SucceedsAfterRecovery(t *testing.T) {
	r := NewRetrier(fastRetry(), nil)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return ErrUnavailable
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetrier_PermanentErrorNotRetried(t *testing.T) {
	r := NewRetrier(fastRetry(), func(int, time.Duration, error) {
		t.Fatal("must not wait on permanent error")
	})

	permanent := errors.New("invalid credentials")
	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, calls)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	r := NewRetrier(RetryConfig{Initial: time.Hour, Max: time.Hour, MaxRetries: 5}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	start := time.Now()
	err := r.Do(ctx, func(ctx context.Context) error {
		return ErrUnavailable
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestRetrier_NoRetries(t *testing.T) {
	r := NewRetrier(RetryConfig{Initial: time.Millisecond, Max: time.Millisecond}, nil)

	calls := 0
	err := r.Do(context.Background(), func(ctx context.Context) error {
		calls++
		return ErrUnavailable
	})

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 1, calls)
}
