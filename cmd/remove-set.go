package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeSetCmd = &cobra.Command{
	Use:   "remove-set [exercise-index] [set-index]",
	Short: "Remove a set from an exercise in the current session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		setIdx, err := parseIndex(args[1])
		if err != nil {
			return err
		}

		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		ex, err := exerciseAt(agg.Session(), exIdx)
		if err != nil {
			return err
		}
		set, err := setAt(ex, setIdx)
		if err != nil {
			return err
		}

		if err := agg.RemoveSet(ex.ID, set.ID); err != nil {
			return fmt.Errorf("Failed to remove set: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Removed set %d from exercise %d\n", setIdx, exIdx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeSetCmd)
}
