package llm

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for provider failures. Implementations wrap these so
// callers can classify with errors.Is.
var (
	// ErrRateLimit indicates the provider returned HTTP 429.
	ErrRateLimit = errors.New("rate limited")

	// ErrInvalidResponse indicates the response failed JSON parsing or
	// schema validation.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrProviderUnavailable indicates the provider returned a 5xx or
	// was unreachable.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrMaxTokensExceeded indicates the response was truncated.
	ErrMaxTokensExceeded = errors.New("max tokens exceeded")
)

// RateLimitError carries the provider's retry-after hint alongside the
// underlying cause. Matches ErrRateLimit via errors.Is.
type RateLimitError struct {
	// RetryAfter is the suggested wait, zero when the provider didn't
	// send one.
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() []error { return []error{ErrRateLimit, e.Err} }

// ValidationError describes why a response failed schema validation.
// Matches ErrInvalidResponse via errors.Is.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response: %s", e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidResponse }

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
