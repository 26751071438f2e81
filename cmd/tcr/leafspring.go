package main

import (
	"github.com/spf13/cobra"
)

var leafspringCmd = &cobra.Command{
	Use:   "leafspring",
	Short: "Leaf spring load distribution",
	Long: `Resolve the tare, payload and equipment point loads onto the two
spring centres of a two-axle trailer by the lever rule.

Examples:
  tcr leafspring
  tcr leafspring --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("leafspring", leafspringFlags)
	},
}

var leafspringFlags *sheetFlags

func init() {
	leafspringFlags = addSheetFlags(leafspringCmd)
	rootCmd.AddCommand(leafspringCmd)
}
