package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/config"
	"tcr/internal/history"
	"tcr/internal/logging"
	"tcr/internal/project"
	"tcr/internal/report"
	"tcr/internal/version"
)

var (
	// projectFlag is the CLI -p/--project flag value
	projectFlag string
	// formatFlag is the CLI --format flag value; empty falls back to
	// the configured default
	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tcr",
	Short: "tcr - Trailer Coupling Review toolkit",
	Long: `tcr reviews light-trailer coupling designs: axle, frame, hitch and
chain strength, stability angle, turning radius, brake and coupling
checks, weight distribution, and the single-page PDF judgment sheets
the review paperwork is built from.

Judgment inputs live in a project file (YAML or JSON, packed .tcrz
supported); each subcommand evaluates one sheet, 'review' runs them
all, and 'export' emits the PDF documents.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("tcr version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", "project.yaml",
		"Project file (.yaml, .json or .tcrz)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"Output format: json or human (default from config)")
}

// mustLoadConfig loads the tool configuration from the working
// directory, exiting on a malformed file.
func mustLoadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the command logger from the configured level and
// format.
func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.Config{
		Format: logging.ParseFormat(cfg.Logging.Format),
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}

// mustLoadProject reads the project named by --project.
func mustLoadProject() *project.Project {
	p, err := project.Load(projectFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

// outputFormat resolves the effective output format: --format wins,
// then the configured default.
func outputFormat(cfg *config.Config) OutputFormat {
	if formatFlag != "" {
		return OutputFormat(formatFlag)
	}
	if cfg.Output.DefaultFormat != "" {
		return OutputFormat(cfg.Output.DefaultFormat)
	}
	return FormatJSON
}

// newBuilder builds the PDF renderer from the configured font and
// author.
func newBuilder(cfg *config.Config, logger *logging.Logger) *report.Builder {
	return report.NewBuilder(report.Config{
		FontPath: cfg.Report.FontPath,
		FontName: cfg.Report.FontName,
		Author:   cfg.Report.Author,
	}, logger)
}

// openLedger opens the history ledger when enabled; a nil ledger
// disables recording.
func openLedger(cfg *config.Config, logger *logging.Logger) *history.Ledger {
	if !cfg.History.Enabled {
		return nil
	}
	ledger, err := history.Open(cfg.History.Path, logger)
	if err != nil {
		logger.Warn("history ledger unavailable", map[string]interface{}{
			"path":  cfg.History.Path,
			"error": err.Error(),
		})
		return nil
	}
	return ledger
}

// printResponse formats and prints a command response.
func printResponse(resp interface{}, format OutputFormat) {
	out, err := FormatResponse(resp, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
