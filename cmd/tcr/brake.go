package main

import (
	"github.com/spf13/cobra"
)

var brakeCmd = &cobra.Command{
	Use:   "brake",
	Short: "Brake drum strength judgment",
	Long: `Judge the brake drum with the Lamé thick-cylinder solution: hoop
stresses at the bore and the surface, and safety factors against
tensile, yield and shear strength.

Examples:
  tcr brake
  tcr brake --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("brake", brakeFlags)
	},
}

var brakeFlags *sheetFlags

func init() {
	brakeFlags = addSheetFlags(brakeCmd)
	rootCmd.AddCommand(brakeCmd)
}
