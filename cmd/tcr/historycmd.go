package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/history"
)

var (
	historyLimit       int
	historyProjectName string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously issued documents",
	Long: `List the document issuances recorded in the history ledger, most
recent first.

Examples:
  tcr history
  tcr history -n 50
  tcr history --name "Test Trailer"`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().StringVar(&historyProjectName, "name", "",
		"Show entries for this project name only")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)

	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "Error: history is disabled in the configuration")
		os.Exit(1)
	}

	ledger, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer ledger.Close()

	var entries []history.Entry
	if historyProjectName != "" {
		entries, err = ledger.ByProject(historyProjectName)
	} else {
		entries, err = ledger.Recent(historyLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResponse(entries, outputFormat(cfg))
}
