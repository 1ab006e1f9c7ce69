package catalog

import (
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// Product is an immutable catalog entry. JSON field names match the
// persisted cart snapshot and the remote catalog document.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"nombre"`
	Price float64 `json:"precio"`
	Glyph string  `json:"imagen"`
}

// Normalize returns a copy of p with NFC-normalized text fields.
func (p Product) Normalize() Product {
	p.Name = norm.NFC.String(p.Name)
	p.Glyph = norm.NFC.String(p.Glyph)
	return p
}

// FormatPrice renders an amount the way the cart displays it, e.g. "$40"
// or "$12.5". No thousands separators and no currency logic.
func FormatPrice(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// Find returns the first product with the given id.
func Find(products []Product, id int64) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
