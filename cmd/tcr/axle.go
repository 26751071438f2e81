package main

import (
	"github.com/spf13/cobra"
)

var axleCmd = &cobra.Command{
	Use:   "axle",
	Short: "Axle strength judgment",
	Long: `Judge the bending strength of the axle under the per-wheel load.

Reads the axle section of the project file: gross weight, wheel count,
axle diameter, bearing offset and material strengths (or a material
grade name).

Examples:
  tcr axle
  tcr axle -p trailer.yaml --format=human
  tcr axle --pdf reports/axle.pdf --open`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("axle", axleFlags)
	},
}

var axleFlags *sheetFlags

func init() {
	axleFlags = addSheetFlags(axleCmd)
	rootCmd.AddCommand(axleCmd)
}
