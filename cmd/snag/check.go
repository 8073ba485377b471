package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snag/internal/diagfmt"
	"snag/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [path ...]",
	Short: "Validate hazard documents",
	Long: `Check loads every named document (directories are searched for .hz
files) and reports structural problems. Documents are validated
concurrently; output order is stable. The exit code is non-zero when
any document is malformed.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		path, _, err := resolveDocument(nil)
		if err != nil {
			return err
		}
		paths = []string{path}
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	results, err := driver.CheckPaths(cmd.Context(), paths, maxDiagnostics)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
		Context:   true,
	}

	failed := 0
	for _, r := range results {
		if r.Result.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, r.Result.Bag, r.Result.FileSet, opts)
		}
		if r.Result.Err != nil {
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d entries)\n", r.Path, r.Result.Catalog.Len())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents malformed", failed, len(results))
	}
	return nil
}
