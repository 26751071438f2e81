package main

import (
	"github.com/spf13/cobra"
)

var turningCmd = &cobra.Command{
	Use:   "turning",
	Short: "Minimum turning radius",
	Long: `Compute the minimum turning radius of the coupled combination from
the wheelbases, half treads and the coupler offset.

Examples:
  tcr turning
  tcr turning --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("turning", turningFlags)
	},
}

var turningFlags *sheetFlags

func init() {
	turningFlags = addSheetFlags(turningCmd)
	rootCmd.AddCommand(turningCmd)
}
