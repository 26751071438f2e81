package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/report"
	"tcr/internal/review"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Review overview sheet",
	Long: `Build the review overview: project identity, outline and one
judgment line per prepared sheet.

Examples:
  tcr overview
  tcr overview --pdf reports/overview.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runForm("overview", overviewFlags)
	},
}

var form1Cmd = &cobra.Command{
	Use:   "form1",
	Short: "Assembled vehicle application (Form 1)",
	Long: `Build Form 1, the assembled-vehicle application: trailer and towing
vehicle particulars from the project file.

Examples:
  tcr form1 --pdf reports/form1.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runForm("form1", form1Flags)
	},
}

var form2Cmd = &cobra.Command{
	Use:   "form2",
	Short: "Conformity review table (Form 2)",
	Long: `Build Form 2, the conformity review table: every prepared sheet
with its judgment mark and the overall verdict.

Examples:
  tcr form2 --format=human
  tcr form2 --pdf reports/form2.pdf --open`,
	Run: func(cmd *cobra.Command, args []string) {
		runForm("form2", form2Flags)
	},
}

var (
	overviewFlags *sheetFlags
	form1Flags    *sheetFlags
	form2Flags    *sheetFlags
)

func init() {
	overviewFlags = addSheetFlags(overviewCmd)
	form1Flags = addSheetFlags(form1Cmd)
	form2Flags = addSheetFlags(form2Cmd)
	rootCmd.AddCommand(overviewCmd)
	rootCmd.AddCommand(form1Cmd)
	rootCmd.AddCommand(form2Cmd)
}

// runForm builds one of the document sheets. Form 1 needs only the
// project data; the overview and Form 2 run the full review first.
func runForm(kind string, f *sheetFlags) {
	cfg := mustLoadConfig()
	logger := newLogger(cfg)
	p := mustLoadProject()
	applyConfigLimits(cfg, p)

	var sheet *report.Sheet
	switch kind {
	case "form1":
		sheet = report.Form1Sheet(p)
	default:
		res, err := review.Run(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if kind == "overview" {
			sheet = report.OverviewSheet(p, res.Statuses)
		} else {
			sheet = report.Form2Sheet(p, res.Statuses)
		}
	}

	printResponse(sheet, outputFormat(cfg))

	if f.pdf != "" {
		writeSheetPDF(cfg, logger, p, sheet, f.pdf, f.open)
	}
}
