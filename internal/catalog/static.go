package catalog

import (
	"context"
	"slices"
)

// Source produces the ordered product list available at render time.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// DefaultProducts returns the built-in catalog.
func DefaultProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Gamer", Price: 1500, Glyph: "💻"},
		{ID: 2, Name: "Mouse Óptico", Price: 40, Glyph: "🖱️"},
		{ID: 3, Name: "Teclado Mecánico", Price: 120, Glyph: "⌨️"},
		{ID: 4, Name: "Monitor Curvo", Price: 350, Glyph: "🖥️"},
		{ID: 5, Name: "Auriculares RGB", Price: 80, Glyph: "🎧"},
	}
}

// Static is an in-memory Source. Load never fails and never blocks.
type Static struct {
	products []Product
}

// NewStatic creates a Static source. With no products it serves
// DefaultProducts.
func NewStatic(products ...Product) *Static {
	if len(products) == 0 {
		products = DefaultProducts()
	}
	normalized := make([]Product, len(products))
	for i, p := range products {
		normalized[i] = p.Normalize()
	}
	return &Static{products: normalized}
}

// Load returns a copy of the fixed list.
func (s *Static) Load(context.Context) ([]Product, error) {
	return slices.Clone(s.products), nil
}
