package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "Load a YAML catalog fixture into the sqlite catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := c.app.Seed(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products, %d orders, %d carts\n",
				summary.Products, summary.Orders, summary.Carts)
			return nil
		},
	}
}
