package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"snag/internal/diagfmt"
	"snag/internal/driver"
	"snag/internal/project"
)

const noManifestMessage = "no document argument and no snag.toml found\n" +
	"pass the document explicitly, e.g.:\n  snag render hazards.hz"

// resolveDocument picks the document to operate on: an explicit
// argument wins, otherwise the nearest snag.toml names one.
func resolveDocument(args []string) (path string, manifest *project.Manifest, err error) {
	m, ok, err := project.Discover(".")
	if err != nil {
		return "", nil, err
	}
	if ok {
		manifest = m
	}

	if len(args) > 0 && args[0] != "" {
		return args[0], manifest, nil
	}
	if manifest == nil {
		return "", nil, errors.New(noManifestMessage)
	}
	return manifest.DocumentPath(), manifest, nil
}

// loadDocument loads path ("-" means stdin) and prints any diagnostics
// to stderr. The returned error is non-nil when the document is
// unreadable or malformed, so commands can simply propagate it.
func loadDocument(cmd *cobra.Command, path string) (*driver.LoadResult, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	var res *driver.LoadResult
	if path == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		res = driver.LoadVirtual("<stdin>", content, maxDiagnostics)
	} else {
		res, err = driver.Load(path, maxDiagnostics)
		if err != nil {
			return nil, err
		}
	}
	printDiagnostics(cmd, res)
	if res.Err != nil {
		return nil, fmt.Errorf("%s: %w", path, res.Err)
	}
	return res, nil
}

func printDiagnostics(cmd *cobra.Command, res *driver.LoadResult) {
	if res.Bag.Len() == 0 {
		return
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if quiet && !res.Bag.HasErrors() {
		return
	}
	diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
		Context:   true,
	})
}
