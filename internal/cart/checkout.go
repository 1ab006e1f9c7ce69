package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
)

// Receipt acknowledges a completed checkout.
type Receipt struct {
	OrderID string            `json:"order_id"`
	Items   []catalog.Product `json:"items"`
	Total   float64           `json:"total"`
}

// Checkout purchases the cart contents. It is only allowed while the cart
// is NonEmpty: on an empty cart it returns ErrEmptyCheckout and changes
// nothing. On success the cart is cleared and persisted.
func (s *Store) Checkout(ctx context.Context) (Receipt, error) {
	if s.State() == Empty {
		return Receipt{}, ErrEmptyCheckout
	}

	receipt := Receipt{
		OrderID: s.newOrderID(),
		Items:   s.Items(),
		Total:   s.Total(),
	}
	if err := s.Clear(ctx); err != nil {
		return Receipt{}, fmt.Errorf("checkout: %w", err)
	}

	s.logger.Info("Checkout completed",
		zap.String("order_id", receipt.OrderID),
		zap.Int("items", len(receipt.Items)),
		zap.Float64("total", receipt.Total))
	return receipt, nil
}
