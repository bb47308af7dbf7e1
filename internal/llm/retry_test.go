package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_UnavailableUsesFullBudget(t *testing.T) {
	mock := NewMockProvider().
		Fail(Unavailable(errors.New("boom"))).
		Fail(Unavailable(errors.New("boom"))).
		Reply("ok")
	p := WithRetry(mock, fastRetry(3))

	resp, err := p.Generate(context.Background(), Request{UserText: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
	if mock.CallCount() != 3 {
		t.Errorf("made %d calls, want 3", mock.CallCount())
	}
}

func TestRetry_BadPayloadGetsOneMoreTry(t *testing.T) {
	bad := BadPayload([]byte(`{}`), errors.New("missing field"))
	mock := NewMockProvider().Fail(bad).Fail(bad).Fail(bad)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{UserText: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
	if kind, ok := KindOf(err); !ok || kind != KindBadPayload {
		t.Errorf("error kind = %v, want bad_payload", kind)
	}
	if mock.CallCount() != 2 {
		t.Errorf("made %d calls, want 2 (one retry for bad payload)", mock.CallCount())
	}
}

func TestRetry_UnknownErrorReturnsImmediately(t *testing.T) {
	mock := NewMockProvider().Fail(context.Canceled)
	p := WithRetry(mock, fastRetry(5))

	_, err := p.Generate(context.Background(), Request{UserText: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("made %d calls, want 1", mock.CallCount())
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	const pause = 30 * time.Millisecond
	mock := NewMockProvider().
		Fail(RateLimited(pause, errors.New("slow down"))).
		Reply("ok")
	p := WithRetry(mock, fastRetry(2))

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{UserText: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < pause {
		t.Errorf("retried after %s, want at least the backend's %s", elapsed, pause)
	}
}

func TestRetry_ContextCancelStopsWaiting(t *testing.T) {
	mock := NewMockProvider().
		Fail(RateLimited(time.Minute, errors.New("slow down"))).
		Reply("never reached")
	p := WithRetry(mock, fastRetry(2))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := p.Generate(ctx, Request{UserText: "hi"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("made %d calls, want 1", mock.CallCount())
	}
}
