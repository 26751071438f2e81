package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/config"
	"tcr/internal/logging"
	"tcr/internal/project"
	"tcr/internal/report"
	"tcr/internal/review"
)

// sheetFlags are the per-judgment-command output flags.
type sheetFlags struct {
	pdf  string
	open bool
}

func addSheetFlags(cmd *cobra.Command) *sheetFlags {
	f := &sheetFlags{}
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Write the sheet as a PDF to this path")
	cmd.Flags().BoolVar(&f.open, "open", false, "Open the written PDF in the default viewer")
	return f
}

// applyConfigLimits fills tire sheet limits the project leaves unset
// from the tool configuration.
func applyConfigLimits(cfg *config.Config, p *project.Project) {
	if p.TireSheet == nil {
		return
	}
	if p.TireSheet.LoadRateLimit == 0 {
		p.TireSheet.LoadRateLimit = cfg.Limits.TireLoadRate
	}
	if p.TireSheet.PressureLimit == 0 {
		p.TireSheet.PressureLimit = cfg.Limits.TireContactPressure
	}
}

// runJudgment evaluates one named sheet of the project, prints it, and
// optionally writes the PDF.
func runJudgment(kind string, f *sheetFlags) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	p := mustLoadProject()
	applyConfigLimits(cfg, p)

	sheet, err := review.RunSheet(p, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResponse(sheet, outputFormat(cfg))

	if f.pdf != "" {
		writeSheetPDF(cfg, logger, p, sheet, f.pdf, f.open)
	}
}

// writeSheetPDF renders one sheet, records the issuance and opens the
// viewer when requested.
func writeSheetPDF(cfg *config.Config, logger *logging.Logger, p *project.Project, sheet *report.Sheet, path string, open bool) {
	builder := newBuilder(cfg, logger)
	if err := builder.Render(sheet, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if ledger := openLedger(cfg, logger); ledger != nil {
		defer ledger.Close()
		if _, err := ledger.Record(p.Vehicle.Name, sheet.Kind, path, sheet.JudgmentWord()); err != nil {
			logger.Warn("failed to record issuance", map[string]interface{}{
				"sheet": sheet.Kind,
				"error": err.Error(),
			})
		}
	}

	if open || cfg.Output.OpenAfterExport {
		if err := report.OpenViewer(path); err != nil {
			logger.Warn("failed to open viewer", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
