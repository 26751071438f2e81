package main

import (
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Safety chain strength judgment",
	Long: `Judge the safety chain against the twice-gross-weight retention
requirement, from the link wire diameter and the chain material.

Examples:
  tcr chain
  tcr chain --pdf reports/chain.pdf`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("chain", chainFlags)
	},
}

var chainFlags *sheetFlags

func init() {
	chainFlags = addSheetFlags(chainCmd)
	rootCmd.AddCommand(chainCmd)
}
