package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "forja",
	Short: "CLI training session tracker with supersets, circuits and warm-up ramps",
}

func Execute() error {
	return rootCmd.Execute()
}
