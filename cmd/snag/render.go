package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snag/internal/driver"
	"snag/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] [doc.hz]",
	Short: "Render a hazard document",
	Long: `Render loads a hazard document and writes it out in the chosen
format, preserving entry order. Without an argument the document named
by the nearest snag.toml is rendered; "-" reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	renderCmd.Flags().String("format", "", "output format (text|html|json|ansi)")
	renderCmd.Flags().Bool("no-cache", false, "bypass the render cache")
	renderCmd.Flags().String("title", "", "document title for HTML output")
}

func runRender(cmd *cobra.Command, args []string) error {
	path, manifest, err := resolveDocument(args)
	if err != nil {
		return err
	}

	formatName, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	title, _ := cmd.Flags().GetString("title")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	// Manifest [render] defaults apply when flags are silent.
	if manifest != nil {
		if formatName == "" {
			formatName = manifest.Config.Render.Format
		}
		if output == "" {
			output = manifest.Config.Render.Output
		}
		if title == "" {
			title = manifest.Config.Catalog.Name
		}
	}
	if formatName == "" {
		formatName = "text"
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return err
	}

	res, err := loadDocument(cmd, path)
	if err != nil {
		return err
	}

	var cache *driver.RenderCache
	if !noCache {
		// An unusable cache dir downgrades to uncached rendering.
		cache, _ = driver.OpenRenderCache("snag")
	}

	out, err := driver.RenderCatalog(res, driver.RenderOptions{
		Format: format,
		Title:  title,
		Cache:  cache,
	})
	if err != nil {
		return err
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", output, err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d entries)\n", output, format, res.Catalog.Len())
	}
	return nil
}
