package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// RetryConfig controls how Retry spaces and filters attempts.
type RetryConfig struct {
	// MaxAttempts counts the first call too.
	MaxAttempts int
	// InitialBackoff is the delay scheduled after the first failure.
	InitialBackoff time.Duration
	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration
	// BackoffFactor grows the delay after every failed attempt.
	BackoffFactor float64
	// Jitter spreads each delay by up to this fraction in either
	// direction, between 0 and 1.
	Jitter float64
	// RetryIf decides whether an error is worth another attempt.
	// Nil means DefaultRetryIf.
	RetryIf func(error) bool
	// OnRetry observes every scheduled retry.
	OnRetry func(attempt int, err error, backoff time.Duration)
}

func (cfg *RetryConfig) applyDefaults() {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 100 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 10 * time.Second
	}
	if cfg.BackoffFactor <= 0 {
		cfg.BackoffFactor = 2.0
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = DefaultRetryIf
	}
}

// DefaultRetryConfig spaces three attempts starting at 100ms, doubling
// each time with 10% jitter, capped at 10s.
func DefaultRetryConfig() RetryConfig {
	cfg := RetryConfig{Jitter: 0.1}
	cfg.applyDefaults()
	return cfg
}

// DefaultRetryIf retries every error except context cancellation.
func DefaultRetryIf(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Retry calls fn until it succeeds, RetryIf rules the error out, the
// attempts run out, or ctx is done. When attempts run out the last
// error comes back; a ruled-out error comes back immediately.
func Retry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var zero T
	cfg.applyDefaults()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !cfg.RetryIf(err) {
			return zero, err
		}
		if attempt == cfg.MaxAttempts {
			return zero, err
		}

		backoff := backoffFor(attempt, cfg)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err, backoff)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

func backoffFor(attempt int, cfg RetryConfig) time.Duration {
	d := float64(cfg.InitialBackoff) * math.Pow(cfg.BackoffFactor, float64(attempt-1))
	if cfg.Jitter > 0 {
		span := d * cfg.Jitter
		d += (rand.Float64()*2 - 1) * span
	}
	if d > float64(cfg.MaxBackoff) {
		d = float64(cfg.MaxBackoff)
	}
	if d < 0 {
		d = float64(cfg.InitialBackoff)
	}
	return time.Duration(d)
}
