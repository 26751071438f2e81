package main

import (
	"github.com/spf13/cobra"
)

var weightsheetCmd = &cobra.Command{
	Use:   "weightsheet",
	Short: "Semi-trailer weight calculation sheet",
	Long: `Total the component weight table, split the tare weight over the
axles, locate the centre of gravity and distribute the payload acting
at the offset bed centre.

Component rows may be given structured or as free text lines
("name weight arm height") in the project file.

Examples:
  tcr weightsheet
  tcr weightsheet --format=human`,
	Run: func(cmd *cobra.Command, args []string) {
		runJudgment("weightsheet", weightsheetFlags)
	},
}

var weightsheetFlags *sheetFlags

func init() {
	weightsheetFlags = addSheetFlags(weightsheetCmd)
	rootCmd.AddCommand(weightsheetCmd)
}
