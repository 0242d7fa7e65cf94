package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/models"
	"github.com/spf13/cobra"
)

var groupRest int

var createGroupCmd = &cobra.Command{
	Use:   "create-group [superset|circuit] [exercise-indices...]",
	Short: "Group exercises into a superset (exactly 2) or circuit (3 or more)",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, ok := models.ParseGroupKind(args[0])
		if !ok {
			return fmt.Errorf("Unknown group kind %q (superset or circuit)", args[0])
		}

		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(args)-1)
		for _, arg := range args[1:] {
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

		group, err := agg.CreateGroup(kind, ids, groupRest)
		if err != nil {
			return fmt.Errorf("Failed to create group: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Created %s %d with %d exercises, %d rounds\n",
			group.Kind, group.GroupIndex+1, len(group.ExerciseIDs), group.TotalRounds)
		return nil
	},
}

var dissolveGroupCmd = &cobra.Command{
	Use:   "dissolve-group [group-index]",
	Short: "Dissolve a superset/circuit, detaching its exercises",
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

		if err := agg.DissolveGroup(group.ID); err != nil {
			return fmt.Errorf("Failed to dissolve group: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Dissolved group %d\n", groupIdx)
		return nil
	},
}

func init() {
	createGroupCmd.Flags().IntVar(&groupRest, "rest", 0, "Rest after each full round, in seconds")
	rootCmd.AddCommand(createGroupCmd)
	rootCmd.AddCommand(dissolveGroupCmd)
}
