package main

import (
	"github.com/spf13/cobra"
)

var frameContainer bool

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Chassis frame strength judgment",
	Long: `Judge the chassis frame from the six point load table on a hollow
rectangular or H-beam section.

With --container, judge one rail of a four point supported container
chassis instead (end supports, axle supports, or supports inside the
load points, per the project's container section).

Examples:
  tcr frame
  tcr frame --container
  tcr frame --pdf reports/frame.pdf --open`,
	Run: func(cmd *cobra.Command, args []string) {
		kind := "frame"
		if frameContainer {
			kind = "container"
		}
		runJudgment(kind, frameFlags)
	},
}

var frameFlags *sheetFlags

func init() {
	frameCmd.Flags().BoolVar(&frameContainer, "container", false,
		"Judge the container four point support model")
	frameFlags = addSheetFlags(frameCmd)
	rootCmd.AddCommand(frameCmd)
}
