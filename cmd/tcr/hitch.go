package main

import (
	"github.com/spf13/cobra"
)

var hitchCmd = &cobra.Command{
	Use:   "hitch",
	Short: "Hitch member strength judgment",
	Long: `Judge the hitch member under combined vertical and horizontal
bending, for a round bar or a square hollow section.

Examples:
  tcr hitch
  tcr hitch --pdf reports/hitch.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("hitch", hitchFlags)
	},
}

var hitchFlags *sheetFlags

func init() {
	hitchFlags = addSheetFlags(hitchCmd)
	rootCmd.AddCommand(hitchCmd)
}
