package generation

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig controls retry behavior for transient provider failures.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// BaseDelay is the delay before the first retry; it doubles on each retry.
	BaseDelay time.Duration
}

// RetryProvider is a decorator that retries transient errors with
// exponential backoff and jitter.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
	logger *slog.Logger
}

// WithRetry wraps a Provider with retry logic. Only errors wrapping
// ErrTransientFailure are retried.
func WithRetry(p Provider, cfg RetryConfig, logger *slog.Logger) Provider {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryProvider{inner: p, config: cfg, logger: logger}
}

// Complete implements Provider.
func (r *RetryProvider) Complete(ctx context.Context, req Request) (string, error) {
	for attempt := 0; ; attempt++ {
		text, err := r.inner.Complete(ctx, req)
		if err == nil {
			return text, nil
		}

		if !IsRetryable(err) || attempt >= r.config.MaxRetries {
			return "", err
		}

		delay := r.backoff(attempt)
		r.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attempt+1,
			"max_attempts", r.config.MaxRetries+1,
			"delay", delay,
			"kind", KindOf(err))

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}
}

// Model implements Provider.
func (r *RetryProvider) Model() string {
	return r.inner.Model()
}

// backoff computes delay = base * 2^attempt * [0.5, 1.0).
func (r *RetryProvider) backoff(attempt int) time.Duration {
	wait := float64(r.config.BaseDelay) * math.Pow(2, float64(attempt))
	return time.Duration(wait * (0.5 + rand.Float64()*0.5))
}
