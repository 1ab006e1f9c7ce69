package catalog

import (
	"encoding/json"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

// productSchema constrains a single catalog entry. Unknown fields are
// tolerated so that richer catalogs still load.
const productSchema = `
#Product: {
	id:     int & >0
	nombre: string & !=""
	precio: number & >=0
	imagen: string
	...
}
`

// Schema validates catalog documents against the product definition.
// A Schema is not safe for concurrent use.
type Schema struct {
	ctx     *cue.Context
	product cue.Value
}

// NewSchema compiles the product definition.
func NewSchema() (*Schema, error) {
	ctx := cuecontext.New()
	v := ctx.CompileString(productSchema, cue.Filename("product.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile product schema: %w", err)
	}
	return &Schema{
		ctx:     ctx,
		product: v.LookupPath(cue.ParsePath("#Product")),
	}, nil
}

// Decode parses a catalog document. The document must be a JSON array;
// otherwise an error is returned and no products are produced. Entries
// that do not satisfy the schema are returned as EntryErrors and left out
// of the product list, which keeps the order of the accepted entries.
func (s *Schema) Decode(data []byte) ([]Product, []EntryError, error) {
	expr, err := cuejson.Extract("catalog.json", data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse json: %w", err)
	}
	doc := s.ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return nil, nil, fmt.Errorf("build document: %w", err)
	}
	if doc.IncompleteKind() != cue.ListKind {
		return nil, nil, fmt.Errorf("expected a JSON array, got %v", doc.IncompleteKind())
	}

	iter, err := doc.List()
	if err != nil {
		return nil, nil, fmt.Errorf("iterate document: %w", err)
	}

	products := []Product{}
	var rejected []EntryError
	for i := 0; iter.Next(); i++ {
		entry := iter.Value()
		if err := s.product.Unify(entry).Validate(cue.Concrete(true)); err != nil {
			rejected = append(rejected, EntryError{Index: i, Err: err})
			continue
		}
		p, err := decodeEntry(entry)
		if err != nil {
			rejected = append(rejected, EntryError{Index: i, Err: err})
			continue
		}
		products = append(products, p.Normalize())
	}
	return products, rejected, nil
}

func decodeEntry(v cue.Value) (Product, error) {
	raw, err := v.MarshalJSON()
	if err != nil {
		return Product{}, fmt.Errorf("marshal entry: %w", err)
	}
	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return Product{}, fmt.Errorf("decode entry: %w", err)
	}
	return p, nil
}
