// Package cli implements the carrito command line: the interactive shop
// and headless commands over the same cart.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Overrides applied on top of the config file.
	Variant  string
	Catalog  string
	Database string

	// Logger replaces the configured logger (for testing).
	Logger *zap.Logger
	// OrderIDs replaces the checkout order ID generator (for testing).
	OrderIDs func() string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the carrito CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carrito",
		Short: "Simulador de carrito de compras",
		Long: `A shopping-cart simulator for the terminal.

The cart survives restarts: every change is written to a SQLite database
and restored on the next start. The static variant sells a built-in
catalog; the remote variant loads it from a JSON document and adds
notifications, confirmation before clearing, and checkout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	flags.StringVar(&opts.Variant, "variant", "", "shop variant (static|remote)")
	flags.StringVar(&opts.Catalog, "catalog", "", "remote catalog URL or path")
	flags.StringVar(&opts.Database, "db", "", "path to the cart SQLite database")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))

	return cmd
}
