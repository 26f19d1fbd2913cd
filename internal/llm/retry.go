package llm

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// RetryProvider wraps a Provider with retry logic for transient
// failures: rate limits and provider unavailability get exponential
// backoff with jitter, invalid responses get one extra attempt.
type RetryProvider struct {
	inner       Provider
	maxAttempts int
	baseDelay   time.Duration
}

// NewRetryProvider wraps inner with retries. maxAttempts < 1 is treated
// as 1, baseDelay <= 0 defaults to one second.
func NewRetryProvider(inner Provider, maxAttempts int, baseDelay time.Duration) *RetryProvider {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = time.Second
	}
	return &RetryProvider{inner: inner, maxAttempts: maxAttempts, baseDelay: baseDelay}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

// Generate calls the inner provider, retrying transient failures.
func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := r.delayFor(attempt, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch {
		case errors.Is(err, ErrRateLimit), errors.Is(err, ErrProviderUnavailable):
			// retryable, loop
		case errors.Is(err, ErrInvalidResponse):
			// one extra attempt for a malformed response, then give up
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		default:
			return nil, err
		}
	}
	return nil, lastErr
}

// delayFor computes the backoff before the given attempt. A rate limit
// with a RetryAfter hint wins over computed backoff.
func (r *RetryProvider) delayFor(attempt int, err error) time.Duration {
	var rl *RateLimitError
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}
	// exponential: base * 2^(attempt-1), jittered ±20%
	delay := r.baseDelay * (1 << (attempt - 1))
	jitter := time.Duration(rand.Int63n(int64(delay)/5+1)*2) - delay/5
	return delay + jitter
}
