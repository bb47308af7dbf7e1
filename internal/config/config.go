// Package config loads service configuration from the environment.
// All keys use the PADHAKU_ prefix; generation backend keys also fall
// back to the bare vendor variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/padhakulabs/padhaku/internal/llm"
)

// Config is the full service configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string

	// Mode selects logger and router behavior: "release" or "debug".
	Mode string

	// DBPath locates the activity database. Empty disables activity
	// recording.
	DBPath string

	// LegacyLastQuestion records each study query on the session for
	// the naive follow-up validation path.
	LegacyLastQuestion bool

	// LLM configures the generation backend.
	LLM llm.Config
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Addr:               ":8080",
		Mode:               "release",
		DBPath:             "padhaku.db",
		LegacyLastQuestion: true,
		LLM:                llm.DefaultConfig(),
	}
}

// FromEnv loads configuration, starting from defaults.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("PADHAKU_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("PADHAKU_MODE"); v != "" {
		cfg.Mode = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv("PADHAKU_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v := os.Getenv("PADHAKU_LEGACY_LAST_QUESTION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LegacyLastQuestion = b
		}
	}

	cfg.LLM = llm.ConfigFromEnv()
	if os.Getenv("PADHAKU_LLM_PROVIDER") == "" {
		// No explicit choice: pick whichever vendor key is present.
		cfg.LLM.DiscoverProvider()
	}
	return cfg
}

// Validate checks the configuration for startup-blocking problems.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.Mode != "release" && c.Mode != "debug" {
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return c.LLM.Validate()
}
