package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the products on sale",
		Long: `List the catalog of the configured variant.

The remote variant fetches the catalog document once; if it cannot be
loaded the command fails and nothing is listed.

Example:
  carrito catalog --variant static
  carrito catalog --catalog https://example.com/productos.json --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.Context(), rootOpts, cmd)
		},
	}
	return cmd
}

func runCatalog(ctx context.Context, opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	s, err := openSession(contextOrBackground(ctx), opts, true)
	if err != nil {
		return report(formatter, err, nil)
	}
	defer s.Close()

	if s.catalogErr != nil {
		return report(formatter, s.catalogErr, nil)
	}
	products := s.shop.Products()
	formatter.VerboseLog("Loaded %d product(s)", len(products))
	return formatter.Success(CatalogResult{Products: products})
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
