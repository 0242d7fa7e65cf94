package cmd

import (
	"fmt"
	"time"

	"github.com/forja-fit/forja/internal/utils"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "Complete the current training session and save it to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		if err := agg.Complete(); err != nil {
			return fmt.Errorf("Failed to complete session: %w", err)
		}

		// Sync to the database before the state file goes away: a
		// completed session is persisted and summarized.
		st := openStorage()
		if err := st.SyncSession(agg.Snapshot()); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		sess := agg.Session()
		fmt.Printf("✅ Session saved, duration %s\n",
			utils.FormatDuration(sess.EndTime.Sub(sess.StartTime).Round(time.Second)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
