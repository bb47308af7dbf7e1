package llm

import (
	"context"
	"fmt"

	"github.com/padhakulabs/padhaku/internal/logger"
)

// NewProvider builds the configured provider wrapped in the standard
// decorator chain. Retry sits outermost so each attempt passes through
// the timeout and gets a fresh deadline.
func NewProvider(ctx context.Context, cfg Config, log *logger.Logger) (Provider, error) {
	base, err := newBase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(WithTimeout(WithLogging(base, log), cfg.Timeout), cfg.Retry), nil
}

func newBase(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
