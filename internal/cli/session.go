package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/config"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/logging"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/shop"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/store"
)

// session is everything one command needs: config, logger, database
// and the shop built over them.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *store.Store
	shop   *shop.Shop

	// catalogErr is the catalog load error, if the catalog was requested.
	catalogErr error

	ownsLogger bool
}

// resolveConfig loads the config file and applies flag overrides.
func (o *RootOptions) resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	if o.Variant != "" {
		cfg.Variant = o.Variant
	}
	if o.Catalog != "" {
		cfg.Catalog.Location = o.Catalog
	}
	if o.Database != "" {
		cfg.Storage.Path = o.Database
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}
	return cfg, nil
}

// openSession wires a shop from the options. With withCatalog the catalog
// is loaded while the cart hydrates; a catalog failure is kept in
// catalogErr rather than failing the session.
func openSession(ctx context.Context, opts *RootOptions, withCatalog bool) (*session, error) {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}
	variant, err := shop.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	s := &session{cfg: cfg, logger: opts.Logger}
	if s.logger == nil {
		s.logger, err = logging.New(cfg.Logging, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errConfig, err)
		}
		s.ownsLogger = true
	}

	source, err := newSource(variant, cfg, s.logger)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %w", errConfig, err)
	}

	s.db, err = store.Open(cfg.Storage.Path)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("%w: %w", errStorage, err)
	}

	cartOpts := []cart.Option{cart.WithKey(cfg.Storage.Key), cart.WithLogger(s.logger)}
	if opts.OrderIDs != nil {
		cartOpts = append(cartOpts, cart.WithOrderIDs(opts.OrderIDs))
	}

	var (
		c        *cart.Store
		products []catalog.Product
		loadErr  error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		c, err = cart.New(gctx, s.db, cartOpts...)
		if err != nil {
			return fmt.Errorf("%w: %w", errStorage, err)
		}
		return nil
	})
	if withCatalog {
		g.Go(func() error {
			products, loadErr = source.Load(gctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.Close()
		return nil, err
	}

	s.shop = shop.New(variant, source, c, s.logger)
	if withCatalog {
		s.shop.SetCatalog(products, loadErr)
		s.catalogErr = loadErr
	}

	s.logger.Debug("Session ready",
		zap.String("variant", cfg.Variant),
		zap.String("db", cfg.Storage.Path),
		zap.Int("cart_items", c.Len()))
	return s, nil
}

func newSource(variant shop.Variant, cfg *config.Config, logger *zap.Logger) (catalog.Source, error) {
	if variant == shop.Static {
		return catalog.NewStatic(), nil
	}
	return catalog.NewRemote(cfg.Catalog.Location, catalog.WithLogger(logger))
}

// Close releases the database and flushes the logger.
func (s *session) Close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database", zap.Error(err))
		}
	}
	if s.ownsLogger {
		_ = s.logger.Sync()
	}
}
