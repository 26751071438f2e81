package main

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply supported beam strength judgment",
	Long: `Judge the chassis frame as a simply supported beam with point loads
and a distributed load, traversing shear and bending moment over the
load event points.

Examples:
  tcr beam
  tcr beam --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("beam", beamFlags)
	},
}

var beamFlags *sheetFlags

func init() {
	beamFlags = addSheetFlags(beamCmd)
	rootCmd.AddCommand(beamCmd)
}
