package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"snag/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the render cache",
	Long:  "Remove all cached render output from the snag cache directory.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	cache, err := driver.OpenRenderCache("snag")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", cache.CacheDir())
	}
	return nil
}
