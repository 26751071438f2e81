package main

import (
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Axle weight and tire strength judgment",
	Long: `Judge the axle loads against the tire ratings: per-axle strength
ratio and contact pressure, with tire section widths derived from the
tire size strings when no explicit width is given.

Examples:
  tcr weight
  tcr weight --pdf reports/weight.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("weight", weightFlags)
	},
}

var weightFlags *sheetFlags

func init() {
	weightFlags = addSheetFlags(weightCmd)
	rootCmd.AddCommand(weightCmd)
}
