package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pauseCmd = &cobra.Command{
	Use:   "pause-session",
	Short: "Pause the current training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		if err := agg.Pause(); err != nil {
			return fmt.Errorf("Failed to pause session: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Println("✅ Session paused")
		return nil
	},
}

var resumeCmd = &cobra.Command{
	Use:   "resume-session",
	Short: "Resume a paused training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		if err := agg.Resume(); err != nil {
			return fmt.Errorf("Failed to resume session: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Println("✅ Session resumed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
}
