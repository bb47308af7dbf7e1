package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies backend failures by how the caller should react.
// The engine maps every kind to the same user-facing apology; the retry
// decorator is the component that branches on it.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	// Retryable with backoff.
	KindUnavailable ErrorKind = iota

	// KindRateLimited is a 429. Retryable, honoring RetryAfter.
	KindRateLimited

	// KindBadPayload means the backend answered but the content is
	// unusable: not JSON, or not conforming to the requested schema.
	// Worth exactly one more attempt.
	KindBadPayload
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindBadPayload:
		return "bad_payload"
	default:
		return "unavailable"
	}
}

// BackendError is the one error type adapters return. Adapters wrap
// every vendor SDK failure into it, so callers can classify without
// knowing which vendor served the request.
type BackendError struct {
	Kind ErrorKind

	// RetryAfter is the wait the backend asked for, when it said.
	// Only meaningful for KindRateLimited.
	RetryAfter time.Duration

	// Payload carries the offending content for KindBadPayload.
	Payload json.RawMessage

	Err error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("backend %s", e.Kind)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Unavailable wraps err as a KindUnavailable failure.
func Unavailable(err error) error {
	return &BackendError{Kind: KindUnavailable, Err: err}
}

// RateLimited wraps err as a KindRateLimited failure.
func RateLimited(after time.Duration, err error) error {
	return &BackendError{Kind: KindRateLimited, RetryAfter: after, Err: err}
}

// BadPayload wraps err as a KindBadPayload failure carrying the
// offending content.
func BadPayload(payload json.RawMessage, err error) error {
	return &BackendError{Kind: KindBadPayload, Payload: payload, Err: err}
}

// KindOf extracts the failure kind from err. The second result is
// false for errors that did not come from a backend adapter.
func KindOf(err error) (ErrorKind, bool) {
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return 0, false
}
