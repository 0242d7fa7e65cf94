package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeRoundCmd = &cobra.Command{
	Use:   "complete-round [group-index]",
	Short: "Complete the current round of a superset/circuit (all its sets must be done)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupIdx, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		group, err := groupAt(agg.Session(), groupIdx)
		if err != nil {
			return err
		}

		rest, err := agg.CompleteCurrentRound(group.ID)
		if err != nil {
			return fmt.Errorf("Failed to complete round: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		if group.Completed {
			fmt.Printf("✅ Group %d finished all %d rounds\n", groupIdx, group.TotalRounds)
		} else {
			fmt.Printf("✅ Round done, now on round %d/%d\n", group.CurrentRound, group.TotalRounds)
		}
		if rest > 0 && !group.Completed {
			fmt.Printf("Rest %ds\n", rest)
		}
		return nil
	},
}

var advanceRoundCmd = &cobra.Command{
	Use:   "advance-round [group-index]",
	Short: "Skip to the next round of a superset/circuit regardless of completion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupIdx, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		group, err := groupAt(agg.Session(), groupIdx)
		if err != nil {
			return err
		}

		if err := agg.AdvanceRoundManually(group.ID); err != nil {
			return fmt.Errorf("Failed to advance round: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		if group.Completed {
			fmt.Printf("✅ Group %d finished all %d rounds\n", groupIdx, group.TotalRounds)
		} else {
			fmt.Printf("✅ Skipped ahead, now on round %d/%d\n", group.CurrentRound, group.TotalRounds)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeRoundCmd)
	rootCmd.AddCommand(advanceRoundCmd)
}
