package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index]",
	Short: "Set a note for a specific exercise in the current session",
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

		if err := agg.UpdateExerciseNote(ex.ID, noteText, trainingConfig().NoteMaxLen); err != nil {
			return fmt.Errorf("Failed to set note: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text to set for the exercise")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
