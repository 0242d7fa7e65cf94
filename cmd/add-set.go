package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/engine"
	"github.com/spf13/cobra"
)

var (
	newSetWeight   float32
	newSetReps     int
	newSetDuration int
	newSetRest     int
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-index]",
	Short: "Add a new working set to an exercise in the current session",
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

		// Omitted weight/reps fall back to the previous set's values.
		params := engine.SetParams{RestSeconds: newSetRest}
		if cmd.Flags().Changed("weight") {
			params.Weight = &newSetWeight
		}
		if cmd.Flags().Changed("reps") {
			params.Reps = &newSetReps
		}
		if cmd.Flags().Changed("duration") {
			params.DurationSeconds = &newSetDuration
		}

		set, err := agg.AddSet(ex.ID, params)
		if err != nil {
			return fmt.Errorf("Failed to add set: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Added set %d to exercise %d\n", set.OrderIndex+1, exIdx)
		return nil
	},
}

func init() {
	addSetCmd.Flags().Float32VarP(&newSetWeight, "weight", "w", 0, "Weight for the new set")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Reps for the new set")
	addSetCmd.Flags().IntVarP(&newSetDuration, "duration", "d", 0, "Duration in seconds for time-based sets")
	addSetCmd.Flags().IntVar(&newSetRest, "rest", 0, "Rest after the set, in seconds")
	rootCmd.AddCommand(addSetCmd)
}
