package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reorderExCmd = &cobra.Command{
	Use:   "reorder-ex [positions...]",
	Short: "Reorder exercises: list every current position in the new order, e.g. 'reorder-ex 3 1 2'",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(args))
		for _, arg := range args {
			idx, err := parseIndex(arg)
			if err != nil {
				return err
			}
			ex, err := exerciseAt(agg.Session(), idx)
			if err != nil {
				return err
			}
			ids = append(ids, ex.ID)
		}

		if err := agg.ReorderExercises(ids); err != nil {
			return fmt.Errorf("Failed to reorder exercises: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Println("✅ Exercises reordered")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reorderExCmd)
}
