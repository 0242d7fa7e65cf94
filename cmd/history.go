package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/forja-fit/forja/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyDay   string
	historyLimit int
)

// historyCmd shows saved sessions, newest first, optionally filtered by day.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display saved session history, optionally filtered by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := openStorage()

		var sessions []*models.Session
		var err error
		if historyDay != "" {
			sessions, err = st.GetSessionsByDate(historyDay)
		} else {
			sessions, err = st.ListRecentSessions(historyLimit)
		}
		if err != nil {
			return fmt.Errorf("failed to retrieve sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found")
			return nil
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()

		for _, s := range sessions {
			duration := "In progress"
			if !s.EndTime.IsZero() {
				duration = s.EndTime.Sub(s.StartTime).Round(time.Second).String()
			}
			fmt.Printf("%s | %s | Start: %s | Duration: %s | %s\n",
				cyan(s.StartTime.Local().Format("2006-01-02")),
				s.TemplateID,
				s.StartTime.Local().Format("15:04"),
				duration,
				yellow(s.Status),
			)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVarP(&historyDay, "day", "d", "", "Filter by day (e.g. 07/02/25)")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to show")
}
