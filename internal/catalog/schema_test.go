package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema()
	require.NoError(t, err)
	return s
}

func TestSchema_DecodeValidDocument(t *testing.T) {
	doc := `[
		{"id": 1, "nombre": "Laptop Gamer", "precio": 1500, "imagen": "💻"},
		{"id": 2, "nombre": "Mouse Óptico", "precio": 40.5, "imagen": "🖱️"}
	]`

	products, rejected, err := newTestSchema(t).Decode([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, rejected)

	want := []Product{
		{ID: 1, Name: "Laptop Gamer", Price: 1500, Glyph: "💻"},
		{ID: 2, Name: "Mouse Óptico", Price: 40.5, Glyph: "🖱️"},
	}
	if diff := cmp.Diff(want, products); diff != "" {
		t.Errorf("products mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema_DecodeEmptyArray(t *testing.T) {
	products, rejected, err := newTestSchema(t).Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Empty(t, rejected)
}

func TestSchema_DropsInvalidEntries(t *testing.T) {
	doc := `[
		{"id": 1, "nombre": "Ok", "precio": 10, "imagen": "x"},
		{"id": 2, "nombre": "", "precio": 10, "imagen": "x"},
		{"id": 3, "nombre": "Negative", "precio": -1, "imagen": "x"},
		{"id": 4, "nombre": "Text price", "precio": "10", "imagen": "x"},
		{"nombre": "No id", "precio": 10, "imagen": "x"},
		42,
		{"id": 7, "nombre": "Also ok", "precio": 0, "imagen": "y", "extra": true}
	]`

	products, rejected, err := newTestSchema(t).Decode([]byte(doc))
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, int64(7), products[1].ID)

	var indexes []int
	for _, r := range rejected {
		indexes = append(indexes, r.Index)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, indexes)
}

func TestSchema_RejectsNonArrayDocument(t *testing.T) {
	_, _, err := newTestSchema(t).Decode([]byte(`{"id": 1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON array")
}

func TestSchema_RejectsMalformedJSON(t *testing.T) {
	_, _, err := newTestSchema(t).Decode([]byte(`[{"id": 1,`))
	require.Error(t, err)
}

func TestSchema_NormalizesNames(t *testing.T) {
	doc := "[{\"id\": 2, \"nombre\": \"Mouse O\u0301ptico\", \"precio\": 40, \"imagen\": \"m\"}]"

	products, _, err := newTestSchema(t).Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mouse Óptico", products[0].Name)
}
