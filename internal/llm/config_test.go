package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.Timeout)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PADHAKU_LLM_PROVIDER", "openai")
	t.Setenv("PADHAKU_OPENAI_API_KEY", "sk-test")
	t.Setenv("PADHAKU_OPENAI_MODEL", "gpt-4o")
	t.Setenv("PADHAKU_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestConfigFromEnv_BareVendorKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := ConfigFromEnv()
	if cfg.Gemini.APIKey != "g-key" {
		t.Errorf("gemini key = %q, want g-key", cfg.Gemini.APIKey)
	}
}

func TestDiscoverProvider(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
		found  bool
	}{
		{"gemini wins", func(c *Config) {
			c.Gemini.APIKey = "g"
			c.OpenAI.APIKey = "o"
		}, "gemini", true},
		{"openai second", func(c *Config) {
			c.OpenAI.APIKey = "o"
			c.Anthropic.APIKey = "a"
		}, "openai", true},
		{"anthropic last", func(c *Config) {
			c.Anthropic.APIKey = "a"
		}, "anthropic", true},
		{"none found", func(c *Config) {}, "gemini", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			found := cfg.DiscoverProvider()
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if cfg.Provider != tt.want {
				t.Errorf("provider = %q, want %q", cfg.Provider, tt.want)
			}
		})
	}
}

func TestValidate_MissingKey(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for gemini provider without key")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider should validate, got %v", err)
	}

	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
