package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"graviton/internal/diagfmt"
	"graviton/internal/driver"
	"graviton/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [directory]",
	Short: "Parse every source file of a project and report diagnostics",
	Long: `Check parses all *.grv files of a project in parallel and prints their
diagnostics. Without an argument the project root is located via graviton.toml.
Exit status is 1 if any file has errors.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir, err := checkTargetDir(args)
	if err != nil {
		return err
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	fs, _, results, err := driver.ParseDir(cmd.Context(), dir, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
	}

	totalFiles := len(results)
	failedFiles := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			failedFiles++
		}
		if r.Bag.Len() == 0 {
			continue
		}
		r.Bag.Sort()

		switch format {
		case "pretty":
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		case "json":
			if err := diagfmt.JSON(os.Stdout, r.Bag, fs, jsonOpts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if !quiet && format == "pretty" {
		if failedFiles == 0 {
			fmt.Fprintf(os.Stdout, "checked %d file(s), no errors\n", totalFiles)
		} else {
			fmt.Fprintf(os.Stdout, "checked %d file(s), %d with errors\n", totalFiles, failedFiles)
		}
	}

	if failedFiles > 0 {
		cmd.SilenceUsage = true
		return fmt.Errorf("found errors in %d of %d file(s)", failedFiles, totalFiles)
	}
	return nil
}

// checkTargetDir выбирает директорию для проверки: аргумент или
// source_dir из ближайшего graviton.toml.
func checkTargetDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	manifestPath, ok, err := project.FindManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return ".", nil
	}

	manifest, err := project.Load(manifestPath)
	if err != nil {
		return "", err
	}
	root := filepath.Dir(manifestPath)
	return filepath.Join(root, manifest.Build.SourceDir), nil
}
