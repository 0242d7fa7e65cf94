package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/forja-fit/forja/internal/models"
	"github.com/forja-fit/forja/internal/storage"
	"github.com/forja-fit/forja/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	catalogEquipment   string
	catalogMuscle      string
	catalogDescription string
)

var catalogAddCmd = &cobra.Command{
	Use:   "catalog-add [name]",
	Short: "Add an exercise to the catalog (updates it if the name exists)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStorage()

		ex := models.CatalogExercise{
			ID:            uuid.NewString(),
			Name:          args[0],
			Equipment:     catalogEquipment,
			PrimaryMuscle: catalogMuscle,
			Description:   catalogDescription,
			CreatedAt:     time.Now().UTC(),
		}
		if err := st.CreateCatalogExercise(ex); err != nil {
			return fmt.Errorf("Failed to add catalog exercise: %w", err)
		}

		fmt.Printf("✅ Added %s to the catalog\n", ex.Name)
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "catalog-import [file]",
	Short: "Import catalog exercises from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imp, err := utils.ParseCatalogFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to parse TOML file: %w", err)
		}

		st := openStorage()
		for _, entry := range imp.Exercises {
			ex := models.CatalogExercise{
				ID:            uuid.NewString(),
				Name:          entry.Name,
				Equipment:     entry.Equipment,
				PrimaryMuscle: entry.PrimaryMuscle,
				Description:   entry.Description,
				CreatedAt:     time.Now().UTC(),
			}
			if err := st.CreateCatalogExercise(ex); err != nil {
				return fmt.Errorf("Failed to import %s: %w", entry.Name, err)
			}
		}

		fmt.Printf("✅ Imported %d catalog exercises\n", len(imp.Exercises))
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "catalog-show [name]",
	Short: "Show a catalog exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStorage()

		ex, err := st.GetCatalogExerciseByName(args[0])
		if err == storage.ErrNotFound {
			return fmt.Errorf("No catalog exercise named %q", args[0])
		}
		if err != nil {
			return fmt.Errorf("Failed to load catalog exercise: %w", err)
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()

		fmt.Printf("%s\n", green(ex.Name))
		if ex.Equipment != "" {
			fmt.Printf("%s %s\n", cyan("Equipment:"), ex.Equipment)
		}
		if ex.PrimaryMuscle != "" {
			fmt.Printf("%s %s\n", cyan("Primary muscle:"), ex.PrimaryMuscle)
		}
		if ex.Description != "" {
			fmt.Printf("%s %s\n", cyan("Description:"), ex.Description)
		}
		fmt.Printf("%s %s\n", cyan("Added:"), ex.CreatedAt.Local().Format("2006-01-02"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogAddCmd)
	rootCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogShowCmd)

	catalogAddCmd.Flags().StringVarP(&catalogEquipment, "equipment", "e", "", "Equipment used (e.g. barbell)")
	catalogAddCmd.Flags().StringVarP(&catalogMuscle, "muscle", "m", "", "Primary muscle worked")
	catalogAddCmd.Flags().StringVarP(&catalogDescription, "description", "D", "", "Free-form description")
}
