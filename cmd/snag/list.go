package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [doc.hz]",
	Short: "List entry titles",
	Long:  `List prints every entry title in document order with its illustration count.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

const listTitleWidth = 48

func runList(cmd *cobra.Command, args []string) error {
	path, _, err := resolveDocument(args)
	if err != nil {
		return err
	}
	res, err := loadDocument(cmd, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	i := 0
	for e := range res.Catalog.All() {
		i++
		title := e.Title
		if runewidth.StringWidth(title) > listTitleWidth {
			title = runewidth.Truncate(title, listTitleWidth, "…")
		}
		pad := listTitleWidth - runewidth.StringWidth(title)
		fmt.Fprintf(out, "%3d  %s%*s  %d illustration(s)\n", i, title, pad, "", len(e.Illustrations))
	}
	return nil
}
