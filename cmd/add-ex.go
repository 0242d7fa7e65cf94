package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/engine"
	"github.com/spf13/cobra"
)

var (
	addExSets   int
	addExWeight float32
	addExReps   int
	addExRest   int
)

var addExCmd = &cobra.Command{
	Use:   "add-ex [catalog-exercise-name]",
	Short: "Add an exercise from the catalog to the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		st := openStorage()
		catalogEx, err := st.GetCatalogExerciseByName(args[0])
		if err != nil {
			return fmt.Errorf("Failed to find exercise %s: %w", args[0], err)
		}

		params := engine.SetParams{RestSeconds: addExRest}
		if cmd.Flags().Changed("weight") {
			params.Weight = &addExWeight
		}
		if cmd.Flags().Changed("reps") {
			params.Reps = &addExReps
		}

		ex, err := agg.AddExercise(catalogEx.ID, addExSets, params)
		if err != nil {
			return fmt.Errorf("Failed to add exercise: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Added %s at position %d with %d sets\n", catalogEx.Name, ex.OrderIndex+1, len(ex.Sets))
		return nil
	},
}

func init() {
	addExCmd.Flags().IntVarP(&addExSets, "sets", "s", 3, "Number of working sets")
	addExCmd.Flags().Float32VarP(&addExWeight, "weight", "w", 0, "Starting weight for each set")
	addExCmd.Flags().IntVarP(&addExReps, "reps", "r", 0, "Target reps for each set")
	addExCmd.Flags().IntVar(&addExRest, "rest", 0, "Rest after each set, in seconds")
	rootCmd.AddCommand(addExCmd)
}
