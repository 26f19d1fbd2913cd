package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&RateLimitError{Err: errors.New("429")})
	mock.QueueResponse("hello")

	p := NewRetryProvider(mock, 3, time.Millisecond)
	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := resp.Text(); got != "hello" {
		t.Errorf("content = %q, want %q", got, "hello")
	}
	if n := len(mock.Calls()); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider()
	for i := 0; i < 3; i++ {
		mock.QueueError(&RateLimitError{Err: errors.New("429")})
	}

	p := NewRetryProvider(mock, 3, time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrRateLimit) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if n := len(mock.Calls()); n != 3 {
		t.Errorf("calls = %d, want 3", n)
	}
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ValidationError{Detail: "bad json"})
	mock.QueueError(&ValidationError{Detail: "bad json again"})
	mock.QueueResponse("never reached")

	p := NewRetryProvider(mock, 5, time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if n := len(mock.Calls()); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestRetryDoesNotRetryFatalErrors(t *testing.T) {
	fatal := errors.New("bad request")
	mock := NewMockProvider()
	mock.QueueError(fatal)
	mock.QueueResponse("never reached")

	p := NewRetryProvider(mock, 3, time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, fatal) {
		t.Fatalf("err = %v, want %v", err, fatal)
	}
	if n := len(mock.Calls()); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&RateLimitError{RetryAfter: time.Minute, Err: errors.New("429")})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	p := NewRetryProvider(mock, 3, time.Millisecond)
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := &Schema{
		Name: "study-reminder",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"frequency"},
			"properties": map[string]any{
				"frequency": map[string]any{
					"type": "string",
					"enum": []any{"daily", "weekly"},
				},
			},
		},
	}

	if err := validateAgainstSchema([]byte(`{"frequency":"daily"}`), schema); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	err := validateAgainstSchema([]byte(`{"frequency":"hourly"}`), schema)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("enum violation: err = %v, want ErrInvalidResponse", err)
	}
	err = validateAgainstSchema([]byte(`not json`), schema)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("malformed JSON: err = %v, want ErrInvalidResponse", err)
	}
}
