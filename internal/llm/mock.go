package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider returns queued responses in FIFO order. For tests.
type MockProvider struct {
	mu        sync.Mutex
	responses []mockResult
	calls     []Request
}

type mockResult struct {
	resp *Response
	err  error
}

// NewMockProvider creates an empty mock. Generate fails until responses
// are queued.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// QueueResponse queues a successful text response.
func (m *MockProvider) QueueResponse(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResult{resp: &Response{
		Content:    json.RawMessage(content),
		Model:      "mock",
		StopReason: "end",
	}})
}

// QueueError queues a failure.
func (m *MockProvider) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResult{err: err})
}

func (m *MockProvider) ModelID() string { return "mock" }

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if len(m.responses) == 0 {
		return nil, ErrProviderUnavailable
	}
	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.err != nil {
		return nil, next.err
	}
	return next.resp, nil
}

// Calls returns the requests seen so far.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
