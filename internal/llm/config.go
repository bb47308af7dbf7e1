package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all generation backend configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Retry     RetryConfig

	// Timeout is the deadline for a single generation attempt. Each
	// retry attempt gets a fresh deadline. Default: 30s.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenAI-compatible gateways.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is the
// default backend; the service was built against it first.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. PADHAKU_-prefixed variables win; bare
// vendor keys (GEMINI_API_KEY etc.) are honored so a stock deployment
// needs only one variable.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("PADHAKU_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := firstEnv("PADHAKU_GEMINI_API_KEY", "GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("PADHAKU_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := firstEnv("PADHAKU_OPENAI_API_KEY", "OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("PADHAKU_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("PADHAKU_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := firstEnv("PADHAKU_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("PADHAKU_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if t := os.Getenv("PADHAKU_LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			cfg.Timeout = d
		}
	}

	return cfg
}

// DiscoverProvider probes vendor API key env vars in priority order
// (Gemini → OpenAI → Anthropic) and sets cfg.Provider to the first one
// whose key is present. Returns false if none is found.
func (c *Config) DiscoverProvider() bool {
	switch {
	case c.Gemini.APIKey != "":
		c.Provider = "gemini"
	case c.OpenAI.APIKey != "":
		c.Provider = "openai"
	case c.Anthropic.APIKey != "":
		c.Provider = "anthropic"
	default:
		return false
	}
	return true
}

// Validate checks that the selected backend has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("PADHAKU_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("PADHAKU_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("PADHAKU_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
