package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the tool configuration",
	Long: `Show the effective configuration: defaults merged with
.tcr/config.json from the working directory.

Examples:
  tcr config
  tcr config init`,
	Run: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Run:   runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	printResponse(cfg, outputFormat(cfg))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Wrote .tcr/config.json")
}
