package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"snag/internal/diag"
	"snag/internal/note"
	"snag/internal/render"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <title> [doc.hz]",
	Short: "Show a single entry by title",
	Long: `Lookup finds the entry with the given title and prints it. The
exit code is non-zero when no entry has that title.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("format", "text", "output format (text|json)")
}

// lookupEntry tags lookup misses with the CAT2001 code for the exit
// message while keeping *note.NotFoundError matchable.
func lookupEntry(cat *note.Catalog, title string) (note.Entry, error) {
	entry, err := cat.Lookup(title)
	if err != nil {
		return note.Entry{}, fmt.Errorf("%s: %w", diag.CatEntryNotFound.ID(), err)
	}
	return entry, nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	title := args[0]
	path, _, err := resolveDocument(args[1:])
	if err != nil {
		return err
	}

	res, err := loadDocument(cmd, path)
	if err != nil {
		return err
	}

	entry, err := lookupEntry(res.Catalog, title)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	switch formatName {
	case "text":
		single, buildErr := note.NewCatalog([]note.Entry{entry})
		if buildErr != nil {
			return buildErr
		}
		return render.Text{}.Render(cmd.OutOrStdout(), single)
	case "json":
		type illustrationPayload struct {
			Label   string `json:"label,omitempty"`
			Content string `json:"content"`
		}
		payload := struct {
			Title         string                `json:"title"`
			Body          string                `json:"body,omitempty"`
			Illustrations []illustrationPayload `json:"illustrations,omitempty"`
		}{Title: entry.Title, Body: entry.Body}
		for _, ill := range entry.Illustrations {
			payload.Illustrations = append(payload.Illustrations, illustrationPayload{
				Label:   ill.Label,
				Content: ill.Content,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format %q (must be text or json)", formatName)
	}
}
