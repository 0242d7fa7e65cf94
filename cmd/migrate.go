package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade the database schema and repair relationships broken by the upgrade",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st := openStorage()

		from, to, err := st.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("Failed to migrate: %w", err)
		}
		if from == to {
			fmt.Printf("✅ Schema already at version %d\n", to)
			return nil
		}

		// The upgrade can null out child back-references; repair must
		// finish before anything else writes to the graph.
		summary, err := st.RepairRelationships(ctx)
		if err != nil {
			return fmt.Errorf("Failed to repair relationships: %w", err)
		}

		fmt.Printf("✅ Migrated schema from version %d to %d\n", from, to)
		fmt.Printf("✅ Repaired %d broken back-references\n", summary.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
