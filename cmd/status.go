package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a short overview of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}
		sess := agg.Snapshot()

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("%s %s\n", green("Session:"), sess.ID)
		fmt.Printf("%s %s\n", cyan("Template:"), sess.TemplateID)
		fmt.Printf("%s %s\n", cyan("Status:"), sess.Status)
		fmt.Printf("%s %s\n", yellow("Duration:"), time.Since(sess.StartTime).Round(time.Second))
		fmt.Println()

		for _, ex := range sess.Exercises {
			done := 0
			for _, st := range ex.Sets {
				if st.Completed {
					done++
				}
			}
			mark := " "
			if ex.Finished {
				mark = green("✓")
			}
			fmt.Printf("  %s %d. %s — %d/%d sets\n", mark, ex.OrderIndex+1, exerciseLabel(ex.CatalogID), done, len(ex.Sets))
		}

		if len(sess.Groups) > 0 {
			fmt.Println()
			for _, g := range sess.Groups {
				progress := fmt.Sprintf("round %d/%d", g.CurrentRound, g.TotalRounds)
				if g.Completed {
					progress = green("complete")
				}
				fmt.Printf("  %s %d: %d exercises, %s\n", g.Kind, g.GroupIndex+1, len(g.ExerciseIDs), progress)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
