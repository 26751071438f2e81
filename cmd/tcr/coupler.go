package main

import (
	"github.com/spf13/cobra"
)

var couplerCmd = &cobra.Command{
	Use:   "coupler",
	Short: "Coupling joint frame strength judgment",
	Long: `Judge the coupling joint frame under the payload and equipment
moments. The yield margin grades in three bands: full margin, reduced
margin, and exceeding the yield point.

Examples:
  tcr coupler
  tcr coupler --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("coupler", couplerFlags)
	},
}

var couplerFlags *sheetFlags

func init() {
	couplerFlags = addSheetFlags(couplerCmd)
	rootCmd.AddCommand(couplerCmd)
}
