package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/forja-fit/forja/internal/models"
	"github.com/forja-fit/forja/internal/utils"
	"github.com/spf13/cobra"
)

var showSessionCmd = &cobra.Command{
	Use:   "show-session",
	Short: "Show the current session in detail",
	RunE: func(cmd *cobra.Command, args []string) error {
		agg, err := loadAggregate()
		if err != nil {
			return err
		}
		sess := agg.Snapshot()

		duration := time.Since(sess.StartTime).Round(time.Second)

		// Define color functions.
		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		// Print header info.
		fmt.Printf("%s\n", green(sess.TemplateID))
		fmt.Printf("\n%s %s\n", red("Status:"), sess.Status)
		fmt.Printf("%s %s\n", cyan("Started:"), utils.FormatLocal(sess.StartTime))
		fmt.Printf("%s %s\n\n", red("Duration:"), duration)
		if sess.Notes != "" {
			fmt.Printf("%s %s\n\n", yellow("Notes:"), sess.Notes)
		}

		// Exercises grouped under their superset/circuit header, the rest
		// on their own, all in order-index order.
		printedGroups := map[string]bool{}
		for _, ex := range sess.Exercises {
			if ex.GroupID == "" {
				printExerciseDetails(sess, ex, cyan, yellow, green)
				continue
			}
			if printedGroups[ex.GroupID] {
				continue
			}
			printedGroups[ex.GroupID] = true

			g := sess.GroupByID(ex.GroupID)
			if g == nil {
				printExerciseDetails(sess, ex, cyan, yellow, green)
				continue
			}
			progress := fmt.Sprintf("round %d/%d", g.CurrentRound, g.TotalRounds)
			if g.Completed {
				progress = "complete"
			}
			fmt.Printf("%s %s\n", red(fmt.Sprintf("▸ %s %d", strings.ToUpper(string(g.Kind)), g.GroupIndex+1)), yellow("("+progress+")"))
			for _, memberID := range g.ExerciseIDs {
				if member := sess.ExerciseByID(memberID); member != nil {
					printExerciseDetails(sess, member, cyan, yellow, green)
				}
			}
		}

		return nil
	},
}

func printExerciseDetails(sess *models.Session, ex *models.SessionExercise, cyan, yellow, green func(a ...interface{}) string) {
	// Define table indent and column widths.
	tableIndent := "   "
	setColWidth := 6
	currentColWidth := 22
	statusColWidth := 12

	horizontalBorder := tableIndent + "┌" +
		strings.Repeat("─", setColWidth) + "┬" +
		strings.Repeat("─", currentColWidth) + "┬" +
		strings.Repeat("─", statusColWidth) + "┐"
	headerLine := fmt.Sprintf(tableIndent+"│%-*s│%-*s│%-*s│",
		setColWidth, "Set",
		currentColWidth, "Current",
		statusColWidth, "Status",
	)
	midBorder := tableIndent + "├" +
		strings.Repeat("─", setColWidth) + "┼" +
		strings.Repeat("─", currentColWidth) + "┼" +
		strings.Repeat("─", statusColWidth) + "┤"
	bottomBorder := tableIndent + "└" +
		strings.Repeat("─", setColWidth) + "┴" +
		strings.Repeat("─", currentColWidth) + "┴" +
		strings.Repeat("─", statusColWidth) + "┘"

	finished := ""
	if ex.Finished {
		finished = green("(finished)")
	}
	fmt.Printf("%d - %s %s\n", ex.OrderIndex+1, cyan(exerciseLabel(ex.CatalogID)), finished)
	if ex.Note != "" {
		fmt.Printf("   %s %s\n", green("Notes:"), ex.Note)
	}
	if ex.RestSeconds > 0 {
		fmt.Printf("   %s %ds\n", cyan("Rest:"), ex.RestSeconds)
	}
	if best := bestWorkingSet(ex); best != nil {
		fmt.Printf("   %s %.1fkg × %d (1RM: %.1fkg)\n",
			cyan("Best set:"), best.Weight, best.Reps,
			utils.CalculateEpley1RM(best.Weight, best.Reps))
	}

	fmt.Println(horizontalBorder)
	fmt.Println(headerLine)
	fmt.Println(midBorder)

	for _, set := range ex.Sets {
		var setStr string
		switch {
		case set.DurationSeconds > 0:
			setStr = fmt.Sprintf("%ds hold", set.DurationSeconds)
		case set.Weight == 0 && set.Reps == 0:
			setStr = "Not set"
		case set.Weight == 0:
			setStr = fmt.Sprintf("Bodyweight × %d", set.Reps)
		default:
			setStr = fmt.Sprintf("%.1fkg × %d", set.Weight, set.Reps)
		}
		if set.Warmup {
			setStr += " (warm-up)"
		}

		status := "pending"
		if set.Completed {
			status = "done"
		}

		fmt.Printf(tableIndent+"│%-*d│%-*s│%-*s│\n",
			setColWidth, set.OrderIndex+1,
			currentColWidth, setStr,
			statusColWidth, status,
		)
	}
	fmt.Println(bottomBorder)
	fmt.Println()
}

// bestWorkingSet returns the completed non-warm-up set with the highest
// estimated 1RM, or nil when none is completed yet.
func bestWorkingSet(ex *models.SessionExercise) *models.ExerciseSet {
	var best *models.ExerciseSet
	for _, set := range ex.Sets {
		if !set.Completed || set.Warmup || set.Reps == 0 {
			continue
		}
		if best == nil || utils.CalculateEpley1RM(set.Weight, set.Reps) > utils.CalculateEpley1RM(best.Weight, best.Reps) {
			best = set
		}
	}
	return best
}

func init() {
	rootCmd.AddCommand(showSessionCmd)
}
