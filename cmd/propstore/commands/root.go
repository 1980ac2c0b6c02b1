// Package commands implements the CLI commands for propstore.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/propstore/internal/app"
	"go.trai.ch/propstore/internal/build"
	"go.trai.ch/propstore/internal/core/domain"
)

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context) error
	Warm(ctx context.Context, reload bool) (domain.CacheStats, error)
	Suggest(ctx context.Context, opts app.SuggestOptions) ([]domain.Product, error)
	Seed(ctx context.Context, path string) (app.SeedSummary, error)
}

// CLI represents the command line interface for propstore.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "propstore",
		Short:         "Product image cache and cart suggestion service",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newSuggestCmd())
	rootCmd.AddCommand(c.newSeedCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
