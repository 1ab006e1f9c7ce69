package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
)

func TestCheckout_EmptyCartRejected(t *testing.T) {
	snaps := newMemSnapshots()
	s := newTestCart(t, snaps)

	receipt, err := s.Checkout(context.Background())

	require.ErrorIs(t, err, ErrEmptyCheckout)
	assert.Equal(t, Receipt{}, receipt)
	assert.Equal(t, Empty, s.State())
	assert.Zero(t, s.Total())
	assert.Zero(t, snaps.puts)
}

func TestCheckout_ClearsCart(t *testing.T) {
	snaps := newMemSnapshots()
	s := newTestCart(t, snaps, WithOrderIDs(func() string { return "order-1" }))
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, laptop))
	require.NoError(t, s.Add(ctx, mouse))

	receipt, err := s.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, "order-1", receipt.OrderID)
	assert.Equal(t, []catalog.Product{laptop, mouse}, receipt.Items)
	assert.Equal(t, 1540.0, receipt.Total)

	assert.Equal(t, Empty, s.State())
	assert.Equal(t, "[]", string(snaps.values[DefaultKey]))
}

func TestCheckout_PersistFailureKeepsCart(t *testing.T) {
	snaps := newMemSnapshots()
	s := newTestCart(t, snaps)
	ctx := context.Background()
	require.NoError(t, s.Add(ctx, laptop))

	snaps.failPut = true
	_, err := s.Checkout(ctx)

	require.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, NonEmpty, s.State())
}
