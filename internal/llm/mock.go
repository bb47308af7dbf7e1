package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MockProvider replays a scripted sequence of outcomes and records
// every request it sees. Build the script with the chainable Reply,
// ReplyJSON, and Fail helpers; once the script runs out, further calls
// fail as unavailable, which doubles as a "backend is down" stand-in.
type MockProvider struct {
	mu     sync.Mutex
	script []func() (*Response, error)
	next   int

	// Requests holds every request passed to Generate, in order.
	Requests []Request
}

// NewMockProvider creates a MockProvider with an empty script.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Reply scripts a plain-text response.
func (m *MockProvider) Reply(text string) *MockProvider {
	quoted, _ := json.Marshal(text)
	return m.ReplyJSON(quoted)
}

// ReplyJSON scripts a raw JSON response, for structured-output calls.
func (m *MockProvider) ReplyJSON(raw json.RawMessage) *MockProvider {
	m.script = append(m.script, func() (*Response, error) {
		return &Response{Content: raw, Model: "mock"}, nil
	})
	return m
}

// Fail scripts a failure.
func (m *MockProvider) Fail(err error) *MockProvider {
	m.script = append(m.script, func() (*Response, error) {
		return nil, err
	})
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if m.next >= len(m.script) {
		return nil, Unavailable(fmt.Errorf("script exhausted after %d calls", m.next))
	}
	step := m.script[m.next]
	m.next++
	return step()
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
