package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run every judgment in the project",
	Long: `Run every judgment sheet prepared in the project and print the
combined conformity summary with the overall pass/fail verdict.

Examples:
  tcr review
  tcr review -p trailer.tcrz --format=human`,
	Run: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	p := mustLoadProject()
	applyConfigLimits(cfg, p)

	res, err := review.Run(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printResponse(res, outputFormat(cfg))
	if !res.Overall {
		os.Exit(1)
	}
}
