package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
)

// RetryConfig - параметры экспоненциальной задержки
type RetryConfig struct {
	Initial    time.Duration
	Max        time.Duration
	MaxRetries int
}

// DefaultRetryConfig - задержки 1, 2, 4, ..., 32 с, до 5 повторов
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{Initial: time.Second, Max: 32 * time.Second, MaxRetries: 5}
}

// WaitFunc вызывается перед каждым ожиданием; attempt начинается с 1
type WaitFunc func(attempt int, delay time.Duration, err error)

// Retrier повторяет операции, завершившиеся ErrUnavailable.
// Остальные ошибки возвращаются сразу.
type Retrier struct {
	onWait WaitFunc
	cfg    RetryConfig
}

// NewRetrier создает Retrier; onWait может быть nil
func NewRetrier(cfg RetryConfig, onWait WaitFunc) *Retrier {
	return &Retrier{cfg: cfg, onWait: onWait}
}

func (r *Retrier) newBackOff(ctx context.Context) backoff.BackOff {
	// WithMaxRetries(b, 0) не ограничивает число повторов
	if r.cfg.MaxRetries <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.Initial
	b.MaxInterval = r.cfg.Max
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.cfg.MaxRetries)), ctx)
}

// Do выполняет op, повторяя ее с задержкой min(Initial*2^n, Max), пока API недоступен.
// После MaxRetries повторов возвращает ErrRetriesExhausted.
func (r *Retrier) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := 0
	operation := func() error {
		err := op(ctx)
		if err == nil || errors.Is(err, ErrUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}
	notify := func(err error, delay time.Duration) {
		attempt++
		if r.onWait != nil {
			r.onWait(attempt, delay, err)
		}
	}

	err := backoff.RetryNotify(operation, r.newBackOff(ctx), notify)
	switch {
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return ctx.Err()
	case errors.Is(err, ErrUnavailable):
		return fmt.Errorf("%w after %d retries: %w", ErrRetriesExhausted, attempt, err)
	}
	return err
}
