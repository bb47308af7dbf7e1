package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// retrier re-issues failed requests according to the failure kind:
// unavailable and rate-limited get the full attempt budget with
// backoff, a bad payload gets exactly one more try, anything else
// (context cancellation, programmer error) returns immediately.
type retrier struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps a Provider with retry behavior.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{inner: p, cfg: cfg}
}

func (r *retrier) ModelID() string { return r.inner.ModelID() }

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	badPayloads := 0

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		kind, known := KindOf(err)
		if !known {
			return nil, err
		}
		if kind == KindBadPayload {
			badPayloads++
			if badPayloads > 1 {
				return nil, err
			}
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}
	return nil, lastErr
}

// wait picks the pause before the next attempt: the backend's own
// retry-after when it gave one, otherwise capped exponential backoff
// with half-width jitter.
func (r *retrier) wait(attempt int, err error) time.Duration {
	var be *BackendError
	if errors.As(err, &be) && be.RetryAfter > 0 {
		return be.RetryAfter
	}

	d := r.cfg.InitialWait
	for i := 0; i < attempt; i++ {
		d = time.Duration(float64(d) * r.cfg.Multiplier)
		if d >= r.cfg.MaxWait {
			d = r.cfg.MaxWait
			break
		}
	}
	if d < 2 {
		return d
	}
	// Jitter in [d/2, d).
	return d/2 + rand.N(d/2)
}
