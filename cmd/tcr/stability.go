package main

import (
	"github.com/spf13/cobra"
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Lateral stability angle",
	Long: `Compute the maximum stable inclination angle of the coupled pair
from the per-vehicle axle weights, treads and centre of gravity
heights.

Examples:
  tcr stability
  tcr stability --pdf reports/stability.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("stability", stabilityFlags)
	},
}

var stabilityFlags *sheetFlags

func init() {
	stabilityFlags = addSheetFlags(stabilityCmd)
	rootCmd.AddCommand(stabilityCmd)
}
