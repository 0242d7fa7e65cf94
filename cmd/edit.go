package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	editWeight       float32
	editReps         int
	editAllRemaining bool
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-index]",
	Short: "Edit a set in the current session, optionally applying the values to all remaining sets",
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

		var weight *float32
		var reps *int
		if cmd.Flags().Changed("weight") {
			weight = &editWeight
		}
		if cmd.Flags().Changed("reps") {
			reps = &editReps
		}

		if err := agg.UpdateSetValues(ex.ID, set.ID, weight, reps, editAllRemaining); err != nil {
			return fmt.Errorf("Failed to update set: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		if editAllRemaining {
			fmt.Println("✅ Set updated, values applied to all remaining sets")
		} else {
			fmt.Println("✅ Set updated successfully")
		}
		return nil
	},
}

func init() {
	editSetCmd.Flags().Float32VarP(&editWeight, "weight", "w", 0, "Weight used")
	editSetCmd.Flags().IntVarP(&editReps, "reps", "r", 0, "Reps performed")
	editSetCmd.Flags().BoolVarP(&editAllRemaining, "all-remaining", "a", false, "Apply the values to every incomplete set of the exercise")

	rootCmd.AddCommand(editSetCmd)
}
