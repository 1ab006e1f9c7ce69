package cli

import (
	"fmt"
	"strings"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/cart"
	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/catalog"
)

// CatalogResult lists the products on sale.
type CatalogResult struct {
	Products []catalog.Product `json:"products"`
}

func (r CatalogResult) String() string {
	if len(r.Products) == 0 {
		return "Sin productos"
	}
	lines := make([]string, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, fmt.Sprintf("%d  %s %s  %s", p.ID, p.Glyph, p.Name, catalog.FormatPrice(p.Price)))
	}
	return strings.Join(lines, "\n")
}

// CartResult is the cart contents with their positions and total.
type CartResult struct {
	Items []catalog.Product `json:"items"`
	Total float64           `json:"total"`
	State string            `json:"state"`
}

func newCartResult(c *cart.Store) CartResult {
	return CartResult{Items: c.Items(), Total: c.Total(), State: c.State().String()}
}

func (r CartResult) String() string {
	var b strings.Builder
	if len(r.Items) == 0 {
		b.WriteString("Carrito vacío\n")
	}
	for i, p := range r.Items {
		fmt.Fprintf(&b, "%d  %s - %s\n", i, p.Name, catalog.FormatPrice(p.Price))
	}
	b.WriteString("Total: " + catalog.FormatPrice(r.Total))
	return b.String()
}

// ChangeResult reports a cart mutation and the resulting cart.
type ChangeResult struct {
	Message string     `json:"message"`
	Cart    CartResult `json:"cart"`
}

func (r ChangeResult) String() string {
	if r.Message == "" {
		return r.Cart.String()
	}
	return r.Message + "\n" + r.Cart.String()
}

// CheckoutResult acknowledges a purchase.
type CheckoutResult struct {
	Message string `json:"message"`
	cart.Receipt
}

func (r CheckoutResult) String() string {
	var b strings.Builder
	b.WriteString(r.Message + "\n")
	fmt.Fprintf(&b, "Pedido: %s\n", r.OrderID)
	for _, p := range r.Items {
		fmt.Fprintf(&b, "  %s - %s\n", p.Name, catalog.FormatPrice(p.Price))
	}
	b.WriteString("Total: " + catalog.FormatPrice(r.Total))
	return b.String()
}
