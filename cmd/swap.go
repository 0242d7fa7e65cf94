package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var swapExCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-name]",
	Short: "Swap an exercise in the current session with another from the catalog",
	Args:  cobra.ExactArgs(2),
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

		st := openStorage()
		newEx, err := st.GetCatalogExerciseByName(args[1])
		if err != nil {
			return fmt.Errorf("Failed to find exercise %s: %w", args[1], err)
		}

		if err := agg.SwapExercise(ex.ID, newEx.ID); err != nil {
			return fmt.Errorf("Failed to swap exercise: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Swapped exercise to %s\n", newEx.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExCmd)
}
