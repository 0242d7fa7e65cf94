package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/utils"
	"github.com/spf13/cobra"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel-session",
	Short: "Cancel the current training session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		if err := agg.Cancel(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		// A cancelled session is discarded: the synchronizer removes any
		// rows an earlier sync may have written.
		st := openStorage()
		if err := st.SyncSession(agg.Snapshot()); err != nil {
			return fmt.Errorf("Failed to discard session: %w", err)
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
