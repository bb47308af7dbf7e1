package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/padhakulabs/padhaku/internal/config"
	"github.com/padhakulabs/padhaku/internal/llm"
	"github.com/padhakulabs/padhaku/internal/logger"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the generation backend",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify backend connectivity with a one-line generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if err := cfg.LLM.Validate(); err != nil {
			return err
		}

		log := logger.NewNop()
		provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, log)
		if err != nil {
			return fmt.Errorf("init backend: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(cmd.Context(), llm.Request{
			UserText:  "Reply with the single word: ok",
			MaxTokens: 8,
		})
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		fmt.Printf("provider: %s\nmodel:    %s\nlatency:  %s\nreply:    %s\n",
			cfg.LLM.Provider, provider.ModelID(), time.Since(start).Round(time.Millisecond), resp.Text())
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
