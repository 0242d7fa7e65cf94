package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleSetCmd = &cobra.Command{
	Use:   "toggle-set [exercise-index] [set-index]",
	Short: "Toggle completion of a set in the current session",
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

		if err := agg.ToggleSetCompletion(ex.ID, set.ID); err != nil {
			return fmt.Errorf("Failed to toggle set: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		if set.Completed {
			fmt.Printf("✅ Set %d of exercise %d completed", setIdx, exIdx)
		} else {
			fmt.Printf("✅ Set %d of exercise %d marked incomplete", setIdx, exIdx)
		}
		if ex.Finished {
			fmt.Print(" — exercise finished")
		}
		fmt.Println()

		if set.Completed && set.RestSeconds > 0 {
			fmt.Printf("Rest %ds\n", set.RestSeconds)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleSetCmd)
}
