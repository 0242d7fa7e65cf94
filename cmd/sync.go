package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the current session to the database without ending it",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		// Always sync the freshest snapshot; a stale aggregate is how
		// order indices drift.
		st := openStorage()
		if err := st.SyncSession(agg.Snapshot()); err != nil {
			return fmt.Errorf("Failed to sync session: %w", err)
		}

		fmt.Println("✅ Session synced")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
