package main

import (
	"github.com/spf13/cobra"
)

var tiresheetCmd = &cobra.Command{
	Use:   "tiresheet",
	Short: "Tire load rate and contact pressure sheet",
	Long: `Judge each axle group's tire load rate and contact pressure against
the configured limits (100 % load rate, 200 kg/cm pressure by
default).

Examples:
  tcr tiresheet
  tcr tiresheet --pdf reports/tires.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("tiresheet", tiresheetFlags)
	},
}

var tiresheetFlags *sheetFlags

func init() {
	tiresheetFlags = addSheetFlags(tiresheetCmd)
	rootCmd.AddCommand(tiresheetCmd)
}
