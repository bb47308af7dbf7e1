package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds each Generate call with the configured
// deadline, so one stuck backend call cannot hold a webhook turn open
// indefinitely. Each retry attempt gets a fresh deadline because the
// retry decorator sits above this one.
type timeoutProvider struct {
	inner Provider
	d     time.Duration
}

// WithTimeout wraps a Provider with a per-call deadline. A
// non-positive duration disables the wrapper.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, d: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string { return t.inner.ModelID() }
