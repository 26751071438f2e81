package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tcr/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project file utilities",
	Long: `Create, inspect, validate and pack project files.

Examples:
  tcr project init
  tcr project show -p trailer.yaml
  tcr project validate
  tcr project pack trailer.yaml trailer.tcrz
  tcr project unpack trailer.tcrz trailer.yaml`,
}

var projectInitForce bool

var projectInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a template project file",
	Long: `Write a sample light-trailer project to the --project path. Fails
when the file already exists unless --force is given.`,
	Run: runProjectInit,
}

var projectShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the project file",
	Run:   runProjectShow,
}

var projectValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every section of the project",
	Long: `Dry-run every judgment section and report the problems found.
Sections are checked independently; one broken section does not hide
the others.`,
	Run: runProjectValidate,
}

var projectPackCmd = &cobra.Command{
	Use:   "pack <src> <dst.tcrz>",
	Short: "Pack a project into the compressed archive form",
	Args:  cobra.ExactArgs(2),
	Run:   runProjectPack,
}

var projectUnpackCmd = &cobra.Command{
	Use:   "unpack <src.tcrz> <dst>",
	Short: "Unpack a compressed project archive",
	Args:  cobra.ExactArgs(2),
	Run:   runProjectUnpack,
}

func init() {
	projectInitCmd.Flags().BoolVar(&projectInitForce, "force", false,
		"Overwrite an existing project file")
	projectCmd.AddCommand(projectInitCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectValidateCmd)
	projectCmd.AddCommand(projectPackCmd)
	projectCmd.AddCommand(projectUnpackCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectInit(cmd *cobra.Command, args []string) {
	if _, err := os.Stat(projectFlag); err == nil && !projectInitForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", projectFlag)
		os.Exit(1)
	}

	p := project.Template()
	if err := p.Save(projectFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote template project to %s\n", projectFlag)
}

func runProjectShow(cmd *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	p := mustLoadProject()
	printResponse(p, outputFormat(cfg))
}

func runProjectValidate(cmd *cobra.Command, args []string) {
	p := mustLoadProject()

	issues := p.Validate()
	if len(issues) == 0 {
		fmt.Printf("%s: %d section(s) valid\n", projectFlag, len(p.SheetNames()))
		return
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "%s\n", issue)
	}
	os.Exit(1)
}

func runProjectPack(cmd *cobra.Command, args []string) {
	if err := project.Pack(args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Packed %s into %s\n", args[0], args[1])
}

func runProjectUnpack(cmd *cobra.Command, args []string) {
	if err := project.Unpack(args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Unpacked %s into %s\n", args[0], args[1])
}
