package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newWarmCmd() *cobra.Command {
	var reload bool
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Run the image cache pipeline once and print the cache stats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Warm(cmd.Context(), reload)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "images:      %d\n", stats.TotalImages)
			_, _ = fmt.Fprintf(out, "unique urls: %d\n", stats.UniqueURLs)
			_, _ = fmt.Fprintf(out, "size:        %.2f MB (%d bytes)\n", stats.TotalSizeMB, stats.TotalSizeBytes)
			_, _ = fmt.Fprintf(out, "initialized: %t\n", stats.Initialized)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reload, "reload", false, "Clear the cache before loading")
	return cmd
}
