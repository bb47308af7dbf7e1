package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over the external generation backend.
// The rest of the service only ever sees this interface; which vendor
// actually serves a request is a configuration detail.
type Provider interface {
	// Generate sends one prompt to the backend and returns its output.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. Without a Schema, Content is plain text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one single-turn generation request. Webhook turns carry
// no conversation history, so there is no message list: one system
// prompt, one user text.
type Request struct {
	// System is the system prompt. For study answers this is the
	// language-specific instruction template.
	System string

	// UserText is the user's turn text (or, for quiz generation, the
	// language hint standing in for it).
	UserText string

	// Schema, when set, is the JSON Schema the response must conform to.
	// Used for quiz question generation.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Response holds the backend's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// Truncated is true when generation stopped at the MaxTokens cap.
	// Plain-text callers may still use the partial content; a truncated
	// schema response fails validation, so structured callers never see
	// this flag set.
	Truncated bool
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string. Some backends
// wrap bare text in a JSON string; the quotes are stripped in that case.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
