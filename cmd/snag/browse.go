package main

import (
	"errors"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"snag/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [doc.hz]",
	Short: "Browse a catalog interactively",
	Long: `Browse opens a terminal viewer over the catalog: entry titles on
the left, the selected note on the right.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("browse needs an interactive terminal; use render for piped output")
	}

	path, _, err := resolveDocument(args)
	if err != nil {
		return err
	}
	res, err := loadDocument(cmd, path)
	if err != nil {
		return err
	}

	model := ui.NewBrowserModel(filepath.Base(path), res.Catalog)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	_, err = prog.Run()
	return err
}
