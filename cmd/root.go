package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/padhakulabs/padhaku/internal/app"
	"github.com/padhakulabs/padhaku/internal/config"
	"github.com/padhakulabs/padhaku/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "padhaku",
	Short: "Study assistant webhook service",
	Long:  "Padhaku — webhook backend that answers study questions and runs quizzes in English, Hindi, and Hinglish.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite activity database (overrides PADHAKU_DB_PATH)")
	rootCmd.Flags().String("addr", "", "HTTP listen address (overrides PADHAKU_ADDR)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
}

// loadConfig merges environment configuration with command flags.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		cfg.Addr = a
	}
	return cfg
}

func runServe(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)

	log, err := logger.New(cfg.Mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	return a.Run(ctx)
}
