package cmd

import (
	"fmt"

	"github.com/forja-fit/forja/internal/engine"
	"github.com/forja-fit/forja/internal/utils"
	"github.com/spf13/cobra"
)

var (
	templateID     string
	startExercises []string
	startSets      int
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := engine.Start(engine.SystemClock{}, templateID, utils.SessionExists())
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		// Seed exercises by catalog name, each with the requested set count.
		if len(startExercises) > 0 {
			st := openStorage()
			for _, name := range startExercises {
				catalogEx, err := st.GetCatalogExerciseByName(name)
				if err != nil {
					return fmt.Errorf("Failed to find exercise %s: %w", name, err)
				}
				if _, err := agg.AddExercise(catalogEx.ID, startSets, engine.SetParams{}); err != nil {
					return fmt.Errorf("Failed to add exercise %s: %w", name, err)
				}
			}
		}

		if err := saveAggregate(agg); err != nil {
			return err
		}

		fmt.Printf("✅ Started session %s\n", agg.Session().ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&templateID, "template", "t", "", "Template name/ID")
	startCmd.Flags().StringArrayVarP(&startExercises, "exercise", "e", nil, "Catalog exercise name to seed (repeatable)")
	startCmd.Flags().IntVarP(&startSets, "sets", "s", 3, "Sets per seeded exercise")
	startCmd.MarkFlagRequired("template")
}
