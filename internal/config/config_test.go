package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PADHAKU_ADDR", "PADHAKU_MODE", "PADHAKU_DB_PATH",
		"PADHAKU_LEGACY_LAST_QUESTION", "PADHAKU_LLM_PROVIDER",
		"PADHAKU_GEMINI_API_KEY", "GEMINI_API_KEY",
		"PADHAKU_OPENAI_API_KEY", "OPENAI_API_KEY",
		"PADHAKU_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
	} {
		// Setenv registers the restore; Unsetenv leaves the variable
		// genuinely absent for the test body.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Mode != "release" {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if cfg.DBPath != "padhaku.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if !cfg.LegacyLastQuestion {
		t.Error("LegacyLastQuestion should default on")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PADHAKU_ADDR", ":9000")
	t.Setenv("PADHAKU_MODE", "DEBUG")
	t.Setenv("PADHAKU_DB_PATH", "")
	t.Setenv("PADHAKU_LEGACY_LAST_QUESTION", "false")

	cfg := FromEnv()

	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Mode != "debug" {
		t.Errorf("Mode = %q, want lowercased", cfg.Mode)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (recording disabled)", cfg.DBPath)
	}
	if cfg.LegacyLastQuestion {
		t.Error("LegacyLastQuestion not disabled by the override")
	}
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg := Default()
	cfg.LLM.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := cfg
	bad.Addr = ""
	if err := bad.Validate(); err == nil {
		t.Error("empty Addr accepted")
	}

	bad = cfg
	bad.Mode = "verbose"
	if err := bad.Validate(); err == nil {
		t.Error("unknown mode accepted")
	}

	bad = cfg
	bad.LLM.Provider = "gemini"
	bad.LLM.Gemini.APIKey = ""
	if err := bad.Validate(); err == nil {
		t.Error("missing backend key accepted")
	}
}
