// Package main is the briefing CLI, a companion to the service for working
// with raw smart-analysis summaries offline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "briefing",
	Short: "Tools for DataHalo narrative reports",
	Long: `briefing works with the narrative report text the analysis service
produces. The parse subcommand segments a raw summary into typed blocks and
prints them as JSON, Markdown, or HTML. This is the same parse the service
applies before serving reports to the dashboard.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
