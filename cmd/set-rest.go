package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var restSeconds int

var setRestCmd = &cobra.Command{
	Use:   "set-rest [exercise-index]",
	Short: "Set the rest duration for an exercise in the current session",
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

		if err := agg.SetExerciseRest(ex.ID, restSeconds); err != nil {
			return fmt.Errorf("Failed to set rest: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Rest set to %ds\n", restSeconds)
		return nil
	},
}

func init() {
	setRestCmd.Flags().IntVarP(&restSeconds, "seconds", "s", 0, "Rest duration in seconds")
	setRestCmd.MarkFlagRequired("seconds")
	rootCmd.AddCommand(setRestCmd)
}
