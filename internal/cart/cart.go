package cart

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
)

// State is the observable cart state.
type State int

const (
	Empty State = iota
	NonEmpty
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case NonEmpty:
		return "non_empty"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store is the cart: an ordered product sequence mirrored to a
// SnapshotStore.
type Store struct {
	snapshots  SnapshotStore
	key        string
	items      []catalog.Product
	logger     *zap.Logger
	newOrderID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the snapshot key (default DefaultKey).
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithOrderIDs replaces the checkout order ID generator.
func WithOrderIDs(fn func() string) Option {
	return func(s *Store) { s.newOrderID = fn }
}

// New creates a Store hydrated from the snapshot under its key. A missing
// or unparsable snapshot yields an empty cart; only a storage read failure
// is returned as an error.
func New(ctx context.Context, snapshots SnapshotStore, opts ...Option) (*Store, error) {
	s := &Store{
		snapshots:  snapshots,
		key:        DefaultKey,
		items:      []catalog.Product{},
		logger:     zap.NewNop(),
		newOrderID: newOrderID,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, ok, err := snapshots.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load cart snapshot: %w", err)
	}
	if !ok {
		return s, nil
	}

	items, err := decodeSnapshot(data)
	if err != nil {
		s.logger.Warn("Ignoring unreadable cart snapshot",
			zap.String("key", s.key),
			zap.Error(err))
		return s, nil
	}
	if items != nil {
		s.items = items
	}
	s.logger.Debug("Cart hydrated", zap.String("key", s.key), zap.Int("items", len(s.items)))
	return s, nil
}

// Add appends p to the end of the cart and persists the snapshot.
func (s *Store) Add(ctx context.Context, p catalog.Product) error {
	next := append(slices.Clone(s.items), p)
	if err := s.commit(ctx, next); err != nil {
		return fmt.Errorf("add %d: %w", p.ID, err)
	}
	s.logger.Debug("Added to cart", zap.Int64("product_id", p.ID), zap.Int("items", len(s.items)))
	return nil
}

// RemoveAt deletes the entry at index and persists the snapshot. It
// returns the removed product as it was before deletion. An index outside
// [0, Len()) yields a *RangeError and leaves cart and snapshot untouched.
func (s *Store) RemoveAt(ctx context.Context, index int) (catalog.Product, error) {
	if index < 0 || index >= len(s.items) {
		return catalog.Product{}, &RangeError{Index: index, Len: len(s.items)}
	}

	removed := s.items[index]
	next := slices.Delete(slices.Clone(s.items), index, index+1)
	if err := s.commit(ctx, next); err != nil {
		return catalog.Product{}, fmt.Errorf("remove %d: %w", index, err)
	}
	s.logger.Debug("Removed from cart",
		zap.Int("index", index),
		zap.Int64("product_id", removed.ID),
		zap.Int("items", len(s.items)))
	return removed, nil
}

// Clear empties the cart and persists the empty snapshot.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.commit(ctx, []catalog.Product{}); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	s.logger.Debug("Cart cleared")
	return nil
}

// Total returns the sum of unit prices over the current entries.
func (s *Store) Total() float64 {
	var total float64
	for _, p := range s.items {
		total += p.Price
	}
	return total
}

// Items returns a copy of the entries in add order.
func (s *Store) Items() []catalog.Product {
	return slices.Clone(s.items)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.items)
}

// State reports Empty or NonEmpty.
func (s *Store) State() State {
	if len(s.items) == 0 {
		return Empty
	}
	return NonEmpty
}

// Key returns the snapshot key.
func (s *Store) Key() string {
	return s.key
}

// commit writes next as the full snapshot and, only on success, makes it
// the in-memory sequence.
func (s *Store) commit(ctx context.Context, next []catalog.Product) error {
	data, err := encodeSnapshot(next)
	if err != nil {
		return err
	}
	if err := s.snapshots.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.items = next
	return nil
}

func newOrderID() string {
	return uuid.Must(uuid.NewV7()).String()
}
