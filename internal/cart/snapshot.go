package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
)

// DefaultKey is the storage key the cart snapshot lives under.
const DefaultKey = "carrito"

// SnapshotStore is durable key-value storage for the serialized cart.
type SnapshotStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
}

// encodeSnapshot serializes the cart as a JSON array. An empty cart
// encodes as [] rather than null.
func encodeSnapshot(items []catalog.Product) ([]byte, error) {
	if items == nil {
		items = []catalog.Product{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// decodeSnapshot parses a stored cart. A JSON null decodes to an empty cart.
func decodeSnapshot(data []byte) ([]catalog.Product, error) {
	var items []catalog.Product
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	for i := range items {
		items[i] = items[i].Normalize()
	}
	return items, nil
}
