package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LNshuti/adaptest/internal/config"
	"github.com/LNshuti/adaptest/internal/report"
	"github.com/LNshuti/adaptest/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime learning statistics and mastery levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.AttemptRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		states, err := st.MasteryRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load mastery snapshot: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Stats(stats, states))
		return nil
	},
}
