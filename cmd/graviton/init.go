package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"graviton/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [flags] [directory]",
	Short: "Create a new graviton project",
	Long:  `Init scaffolds a graviton.toml manifest and a src/main.grv entry point`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("name", "", "project name (defaults to the directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if err := project.Scaffold(dir, name); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "created %s project in %s\n", project.ManifestName, dir)
	}
	return nil
}
