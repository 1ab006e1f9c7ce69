package cli

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/ui"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// ProgramOptions are passed to the Bubble Tea program (for testing).
	// If nil, the shop runs full screen on the terminal.
	ProgramOptions []tea.ProgramOption
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive shop",
		Long: `Open the interactive shop in the terminal.

The catalog is shown on the left and the cart on the right. The cart
restored from the database is shown right away.

Keys:
  tab     switch between products and cart
  enter   add the selected product / remove the selected entry
  c       clear the cart
  b       checkout (remote variant)
  q       quit

Example:
  carrito run --variant static
  carrito run --catalog ./productos.json --db /tmp/carrito.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(opts, cmd)
		},
	}

	return cmd
}

func runShop(opts *RunOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	formatter.Writer = cmd.ErrOrStderr()

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd.Context()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession(ctx, opts.RootOptions, false)
	if err != nil {
		return report(formatter, err, nil)
	}
	defer s.Close()

	programOpts := opts.ProgramOptions
	if programOpts == nil {
		programOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}

	s.logger.Info("Shop starting",
		zap.String("variant", s.cfg.Variant),
		zap.String("db", s.cfg.Storage.Path))

	if err := ui.Run(ctx, s.shop, s.logger, programOpts...); err != nil && ctx.Err() == nil {
		return WrapExitError(ExitFailure, "terminal UI failed", err)
	}

	s.logger.Info("Shop closed", zap.Int("cart_items", s.shop.Cart().Len()))
	return nil
}

