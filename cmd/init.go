package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forja-fit/forja/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file and initialize the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("Failed to resolve config path: %w", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("Failed to create config directory: %w", err)
			}
			defaults := `[database]
connection_string = ""

[training]
weight_increment = 2.5
warmup_reps = 5
note_max_len = 200
`
			if err := os.WriteFile(path, []byte(defaults), 0644); err != nil {
				return fmt.Errorf("Failed to write config file: %w", err)
			}
			fmt.Printf("✅ Wrote default config to %s\n", path)
		}

		// Opening the storage creates the schema.
		openStorage()
		fmt.Println("✅ Database initialized")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
