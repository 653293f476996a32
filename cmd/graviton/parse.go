package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"graviton/internal/diagfmt"
	"graviton/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.grv|directory>",
	Short: "Parse a graviton source file or directory and output AST",
	Long:  `Parse analyzes a graviton source file or all *.grv files in a directory and outputs their abstract syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("emit-ast", "", "write binary AST artifact(s): a file path for a single source, a directory for directory mode")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	emitAST, err := cmd.Flags().GetString("emit-ast")
	if err != nil {
		return fmt.Errorf("failed to get emit-ast flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}

	if !st.IsDir() {
		result, err := driver.Parse(filePath, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}

		if result.Bag.HasErrors() || result.Bag.HasWarnings() {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, prettyOpts)
		}

		if emitAST != "" {
			if err := driver.WriteAST(emitAST, result.Builder, result.Module); err != nil {
				return fmt.Errorf("failed to write AST artifact: %w", err)
			}
		}

		switch format {
		case "pretty":
			return diagfmt.FormatASTPretty(os.Stdout, result.Builder, result.Module, result.FileSet)
		case "json":
			return diagfmt.FormatASTJSON(os.Stdout, result.Builder, result.Module)
		case "tree":
			return diagfmt.FormatASTTree(os.Stdout, result.Builder, result.Module, result.FileSet)
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	fs, _, results, err := driver.ParseDir(cmd.Context(), filePath, maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			r.Bag.Sort()
			diagfmt.Pretty(os.Stderr, r.Bag, fs, prettyOpts)
		}
	}

	if emitAST != "" {
		for _, r := range results {
			if r.Builder == nil {
				continue
			}
			out, err := artifactOutPath(emitAST, filePath, r.Path)
			if err != nil {
				return fmt.Errorf("failed to resolve artifact path for %s: %w", r.Path, err)
			}
			if err := driver.WriteAST(out, r.Builder, r.Module); err != nil {
				return fmt.Errorf("failed to write AST artifact for %s: %w", r.Path, err)
			}
		}
	}

	switch format {
	case "pretty", "tree":
		for idx, r := range results {
			if !quiet {
				fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			}
			if r.Builder != nil {
				var err error
				if format == "tree" {
					err = diagfmt.FormatASTTree(os.Stdout, r.Builder, r.Module, fs)
				} else {
					err = diagfmt.FormatASTPretty(os.Stdout, r.Builder, r.Module, fs)
				}
				if err != nil {
					return err
				}
			}
			if !quiet && idx < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
	case "json":
		output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
		for _, r := range results {
			if r.Builder == nil {
				output[r.Path] = nil
				continue
			}
			node, err := diagfmt.BuildASTJSON(r.Builder, r.Module)
			if err != nil {
				return err
			}
			nodeCopy := node
			output[r.Path] = &nodeCopy
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return nil
}

// artifactOutPath кладёт артефакт для srcPath под outDir, повторяя
// раскладку исходников относительно srcRoot.
func artifactOutPath(outDir, srcRoot, srcPath string) (string, error) {
	rel, err := filepath.Rel(srcRoot, srcPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(outDir, driver.ArtifactPath(rel)), nil
}
