// Package shop composes the catalog and the cart into the two shop
// variants and decides which notifications each operation produces.
//
// A Shop is the single owner of the catalog and cart state. The terminal
// UI and the CLI commands receive it by reference; nothing is global.
package shop

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/notify"
)

// Variant selects the shop behavior.
type Variant string

const (
	// Static serves the built-in catalog; no notifications, no checkout,
	// clear without confirmation.
	Static Variant = "static"
	// Remote loads the catalog from a document and adds toasts,
	// confirmation before clear, and checkout.
	Remote Variant = "remote"
)

// Variants lists the accepted variant names.
var Variants = []Variant{Static, Remote}

var (
	ErrUnknownVariant      = errors.New("unknown variant")
	ErrUnknownProduct      = errors.New("product not in catalog")
	ErrCheckoutUnsupported = errors.New("checkout is not available in the static variant")
)

// ParseVariant converts a variant name.
func ParseVariant(name string) (Variant, error) {
	v := Variant(name)
	if !slices.Contains(Variants, v) {
		return "", fmt.Errorf("%w %q: must be one of %v", ErrUnknownVariant, name, Variants)
	}
	return v, nil
}

// Shop owns the catalog and the cart.
type Shop struct {
	variant  Variant
	source   catalog.Source
	cart     *cart.Store
	logger   *zap.Logger
	products []catalog.Product
}

// New creates a Shop. The catalog is empty until LoadCatalog or
// SetCatalog runs.
func New(variant Variant, source catalog.Source, c *cart.Store, logger *zap.Logger) *Shop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shop{
		variant:  variant,
		source:   source,
		cart:     c,
		logger:   logger,
		products: []catalog.Product{},
	}
}

// Variant returns the shop variant.
func (s *Shop) Variant() Variant { return s.variant }

// Cart returns the cart store.
func (s *Shop) Cart() *cart.Store { return s.cart }

// Products returns a copy of the loaded catalog.
func (s *Shop) Products() []catalog.Product { return slices.Clone(s.products) }

// Notifies reports whether operations produce toasts and dialogs.
func (s *Shop) Notifies() bool { return s.variant == Remote }

// FetchCatalog asks the source for the catalog without touching shop
// state, so it can run off the event loop.
func (s *Shop) FetchCatalog(ctx context.Context) ([]catalog.Product, error) {
	return s.source.Load(ctx)
}

// SetCatalog installs the result of FetchCatalog. On error the catalog
// stays empty and the load-failure dialog is returned.
func (s *Shop) SetCatalog(products []catalog.Product, err error) *notify.Dialog {
	if err != nil {
		s.logger.Error("Catalog load failed", zap.Error(err))
		s.products = []catalog.Product{}
		return notify.LoadFailed()
	}
	s.products = slices.Clone(products)
	s.logger.Info("Catalog ready", zap.Int("products", len(products)))
	return nil
}

// LoadCatalog fetches and installs the catalog in one step.
func (s *Shop) LoadCatalog(ctx context.Context) (*notify.Dialog, error) {
	products, err := s.FetchCatalog(ctx)
	return s.SetCatalog(products, err), err
}

// Add puts p in the cart.
func (s *Shop) Add(ctx context.Context, p catalog.Product) (*notify.Toast, error) {
	if err := s.cart.Add(ctx, p); err != nil {
		return nil, err
	}
	if !s.Notifies() {
		return nil, nil
	}
	return notify.Added(p.Name), nil
}

// AddByID adds the catalog product with the given id.
func (s *Shop) AddByID(ctx context.Context, id int64) (catalog.Product, *notify.Toast, error) {
	p, ok := catalog.Find(s.products, id)
	if !ok {
		return catalog.Product{}, nil, fmt.Errorf("%w: id %d", ErrUnknownProduct, id)
	}
	toast, err := s.Add(ctx, p)
	return p, toast, err
}

// Remove deletes the cart entry at index. The toast names the product
// that was at index before the removal.
func (s *Shop) Remove(ctx context.Context, index int) (*notify.Toast, error) {
	removed, err := s.cart.RemoveAt(ctx, index)
	if err != nil {
		return nil, err
	}
	if !s.Notifies() {
		return nil, nil
	}
	return notify.Removed(removed.Name), nil
}

// RequestClear starts emptying the cart. The static variant clears at
// once. The remote variant does nothing on an empty cart and otherwise
// returns a confirmation dialog whose continuation clears the cart.
func (s *Shop) RequestClear(ctx context.Context) (*notify.Dialog, error) {
	if !s.Notifies() {
		return nil, s.cart.Clear(ctx)
	}
	if s.cart.State() == cart.Empty {
		return nil, nil
	}
	return notify.ConfirmClear(func() (*notify.Dialog, error) {
		if err := s.cart.Clear(ctx); err != nil {
			return nil, err
		}
		return notify.Cleared(), nil
	}), nil
}

// Checkout purchases the cart. An empty cart yields the warning dialog
// together with cart.ErrEmptyCheckout; success yields the confirmation
// dialog and an emptied cart.
func (s *Shop) Checkout(ctx context.Context) (*notify.Dialog, cart.Receipt, error) {
	if !s.Notifies() {
		return nil, cart.Receipt{}, ErrCheckoutUnsupported
	}
	receipt, err := s.cart.Checkout(ctx)
	if errors.Is(err, cart.ErrEmptyCheckout) {
		s.logger.Warn("Checkout attempted with empty cart")
		return notify.EmptyCart(), cart.Receipt{}, err
	}
	if err != nil {
		return nil, cart.Receipt{}, err
	}
	return notify.Purchased(), receipt, nil
}
