package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padhakulabs/padhaku/internal/activity"
)

var statsCmd = &cobra.Command{
	Use:   "stats <user-id>",
	Short: "Show a user's recorded activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if cfg.DBPath == "" {
			return fmt.Errorf("activity recording is disabled (PADHAKU_DB_PATH is empty)")
		}

		store, err := activity.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open activity store: %w", err)
		}
		defer store.Close()

		userID := args[0]
		st, err := store.Stats(userID)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		total := st.Correct + st.Incorrect
		fmt.Printf("User:      %s\n", userID)
		fmt.Printf("Turns:     %d\n", st.Turns)
		fmt.Printf("Answered:  %d\n", total)
		if total > 0 {
			fmt.Printf("Correct:   %d (%.0f%%)\n", st.Correct, float64(st.Correct)/float64(total)*100)
		} else {
			fmt.Printf("Correct:   %d\n", st.Correct)
		}
		return nil
	},
}
