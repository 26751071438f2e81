package main

import (
	"github.com/spf13/cobra"
)

var couplingCmd = &cobra.Command{
	Use:   "coupling",
	Short: "Coupling specification review",
	Long: `Review the coupling specification: stopping distance at 50 km/h,
parking brake capacity for the combination and for the trailer alone,
and the running performance envelopes.

Examples:
  tcr coupling
  tcr coupling --pdf reports/coupling.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("coupling", couplingFlags)
	},
}

var couplingFlags *sheetFlags

func init() {
	couplingFlags = addSheetFlags(couplingCmd)
	rootCmd.AddCommand(couplingCmd)
}
