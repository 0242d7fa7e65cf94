package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/engine"
	"github.com/spf13/cobra"
)

var (
	warmupStrategy string
	warmupRest     int
)

var warmupCmd = &cobra.Command{
	Use:   "warmup [exercise-index]",
	Short: "Compute warm-up sets from the first working set's weight and prepend them to the exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := parseIndex(args[0])
		if err != nil {
			return err
		}

		strategy, ok := engine.ParseWarmupStrategy(warmupStrategy)
		if !ok {
			return fmt.Errorf("Unknown warm-up strategy %q (light, standard, extended)", warmupStrategy)
		}

		agg, err := loadAggregate()
		if err != nil {
			return err
		}

		ex, err := exerciseAt(agg.Session(), exIdx)
		if err != nil {
			return err
		}

		// Working weight is the first working (non-warm-up) set's weight.
		var workingWeight float32
		found := false
		for _, st := range ex.Sets {
			if !st.Warmup {
				workingWeight = st.Weight
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("Exercise has no working set to derive a warm-up from")
		}

		cfg := trainingConfig()
		batch := engine.ComputeWarmups(workingWeight, strategy, cfg.WeightIncrement, cfg.WarmupReps)
		if len(batch) == 0 {
			fmt.Printf("No warm-up needed for a working weight of %.1f\n", workingWeight)
			return nil
		}

		if err := agg.AddWarmupBatch(ex.ID, batch, warmupRest); err != nil {
			return fmt.Errorf("Failed to add warm-up sets: %w", err)
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Added %d warm-up sets:", len(batch))
		for _, w := range batch {
			fmt.Printf(" %.1fx%d", w.Weight, w.Reps)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	warmupCmd.Flags().StringVarP(&warmupStrategy, "strategy", "s", "standard", "Warm-up strategy: light, standard or extended")
	warmupCmd.Flags().IntVar(&warmupRest, "rest", 0, "Rest after each warm-up set, in seconds")
	rootCmd.AddCommand(warmupCmd)
}
