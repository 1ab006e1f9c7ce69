package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/notify"
)

// CartOptions holds flags for the cart commands.
type CartOptions struct {
	*RootOptions
	Yes bool
}

// NewCartCommand creates the cart command and its subcommands.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and change the persisted cart",
		Long: `Inspect and change the cart without the interactive shop.

Every change is persisted exactly as in the interactive shop, so the
next run starts with the same cart. Positions start at 0 and are the
ones printed by "carrito cart show".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartShow(opts, cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "show",
		Short:         "Show the cart and its total",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartShow(opts, cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "add <product-id>",
		Short:         "Add a catalog product to the cart",
		Example:       "  carrito cart add 2",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartAdd(opts, args[0], cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:           "remove <position>",
		Short:         "Remove the cart entry at a position",
		Example:       "  carrito cart remove 0",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartRemove(opts, args[0], cmd)
		},
	})

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Long: `Empty the cart.

The remote variant asks for confirmation first; --yes answers it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartClear(opts, cmd)
		},
	}
	clearCmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "clear without asking")
	cmd.AddCommand(clearCmd)

	cmd.AddCommand(&cobra.Command{
		Use:           "checkout",
		Short:         "Buy the cart contents (remote variant)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartCheckout(opts, cmd)
		},
	})

	return cmd
}

// withSession opens a session, runs fn and reports any error.
func withSession(opts *CartOptions, cmd *cobra.Command, withCatalog bool,
	fn func(ctx context.Context, s *session, f *OutputFormatter) error) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	ctx := contextOrBackground(cmd.Context())

	s, err := openSession(ctx, opts.RootOptions, withCatalog)
	if err != nil {
		return report(formatter, err, nil)
	}
	defer s.Close()

	if err := fn(ctx, s, formatter); err != nil {
		s.logger.Debug("Cart command failed", zap.String("command", cmd.Name()), zap.Error(err))
		return report(formatter, err, nil)
	}
	return nil
}

func runCartShow(opts *CartOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, false, func(_ context.Context, s *session, f *OutputFormatter) error {
		return f.Success(newCartResult(s.shop.Cart()))
	})
}

func runCartAdd(opts *CartOptions, arg string, cmd *cobra.Command) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return report(newFormatter(opts.RootOptions, cmd), fmt.Errorf("%w: product id %q", errArgument, arg), nil)
	}

	return withSession(opts, cmd, true, func(ctx context.Context, s *session, f *OutputFormatter) error {
		if s.catalogErr != nil {
			return s.catalogErr
		}
		p, _, err := s.shop.AddByID(ctx, id)
		if err != nil {
			return err
		}
		f.VerboseLog("Added product %d", p.ID)
		return f.Success(ChangeResult{
			Message: notify.Added(p.Name).Text,
			Cart:    newCartResult(s.shop.Cart()),
		})
	})
}

func runCartRemove(opts *CartOptions, arg string, cmd *cobra.Command) error {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return report(newFormatter(opts.RootOptions, cmd), fmt.Errorf("%w: position %q", errArgument, arg), nil)
	}

	return withSession(opts, cmd, false, func(ctx context.Context, s *session, f *OutputFormatter) error {
		removed, err := s.shop.Cart().RemoveAt(ctx, index)
		if err != nil {
			return err
		}
		return f.Success(ChangeResult{
			Message: notify.Removed(removed.Name).Text,
			Cart:    newCartResult(s.shop.Cart()),
		})
	})
}

func runCartClear(opts *CartOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, false, func(ctx context.Context, s *session, f *OutputFormatter) error {
		dialog, err := s.shop.RequestClear(ctx)
		if err != nil {
			return err
		}

		message := notify.Cleared().Title + " " + notify.Cleared().Text
		if dialog != nil && dialog.IsConfirm() {
			if !opts.Yes && !confirm(cmd.InOrStdin(), f.GetErrWriter(), dialog) {
				return f.Success(ChangeResult{Message: dialog.CancelText, Cart: newCartResult(s.shop.Cart())})
			}
			next, err := dialog.Confirm()
			if err != nil {
				return err
			}
			if next != nil {
				message = next.Title + " " + next.Text
			}
		}
		return f.Success(ChangeResult{Message: message, Cart: newCartResult(s.shop.Cart())})
	})
}

func runCartCheckout(opts *CartOptions, cmd *cobra.Command) error {
	return withSession(opts, cmd, false, func(ctx context.Context, s *session, f *OutputFormatter) error {
		dialog, receipt, err := s.shop.Checkout(ctx)
		if err != nil {
			return err
		}
		return f.Success(CheckoutResult{
			Message: dialog.Title + " " + dialog.Text,
			Receipt: receipt,
		})
	})
}

// confirm prints the dialog as a prompt and reads one answer line.
func confirm(in io.Reader, out io.Writer, d *notify.Dialog) bool {
	fmt.Fprintf(out, "%s %s [%s/%s] (y/N): ", d.Title, d.Text, d.ConfirmText, d.CancelText)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "s", "si", "sí":
		return true
	default:
		return false
	}
}
