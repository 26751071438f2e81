package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/export"
	"tcr/internal/report"
)

var (
	exportOutputDir string
	exportUnified   bool
	exportSheets    []string
	exportNoForms   bool
	exportOpen      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the review documents as PDFs",
	Long: `Review the project and write every sheet as a PDF into the output
directory, including the overview and form documents. With --unified
all sheets go into one multi-page document. Each issuance is recorded
in the history ledger.

Examples:
  tcr export
  tcr export --out reports --unified
  tcr export --sheet axle --sheet chain
  tcr export --open`,
	Run: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOutputDir, "out", "",
		"Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportUnified, "unified", false,
		"Write one multi-page document instead of per-sheet files")
	exportCmd.Flags().StringArrayVar(&exportSheets, "sheet", nil,
		"Export only the named sheets (repeatable)")
	exportCmd.Flags().BoolVar(&exportNoForms, "no-forms", false,
		"Skip the overview and form sheets")
	exportCmd.Flags().BoolVar(&exportOpen, "open", false,
		"Open the exported document(s) in the default viewer")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	p := mustLoadProject()
	applyConfigLimits(cfg, p)

	ledger := openLedger(cfg, logger)
	if ledger != nil {
		defer ledger.Close()
	}

	dir := exportOutputDir
	if dir == "" {
		dir = cfg.Output.Directory
	}

	e := export.NewExporter(newBuilder(cfg, logger), ledger, logger)
	res, err := e.Export(p, export.Options{
		OutputDir: dir,
		Unified:   exportUnified,
		Sheets:    exportSheets,
		WithForms: !exportNoForms && len(exportSheets) == 0,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResponse(res, outputFormat(cfg))

	if exportOpen || cfg.Output.OpenAfterExport {
		for _, f := range res.Files {
			if err := report.OpenViewer(f); err != nil {
				logger.Warn("failed to open viewer", map[string]interface{}{
					"path":  f,
					"error": err.Error(),
				})
			}
		}
	}
}
