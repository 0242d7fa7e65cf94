package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeExCmd = &cobra.Command{
	Use:   "remove-ex [exercise-index]",
	Short: "Remove an exercise from the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := parseIndex(args[0])
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

		if err := agg.RemoveExercise(ex.ID); err != nil {
			return fmt.Errorf("Failed to remove exercise: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Removed exercise %d from the current session\n", exIdx)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeExCmd)
}
