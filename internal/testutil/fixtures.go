package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/store"
)

// CatalogJSON is a remote catalog document with the built-in products.
const CatalogJSON = `[
  {"id": 1, "nombre": "Laptop Gamer", "precio": 1500, "imagen": "💻"},
  {"id": 2, "nombre": "Mouse Óptico", "precio": 40, "imagen": "🖱️"},
  {"id": 3, "nombre": "Teclado Mecánico", "precio": 120, "imagen": "⌨️"},
  {"id": 4, "nombre": "Monitor Curvo", "precio": 350, "imagen": "🖥️"},
  {"id": 5, "nombre": "Auriculares RGB", "precio": 80, "imagen": "🎧"}
]`

// OpenStore opens a SQLite store in a temp directory, closed on cleanup.
func OpenStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carrito.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

// SeedSnapshot writes a raw cart snapshot into the database at path.
func SeedSnapshot(t *testing.T, path, key, snapshot string) {
	t.Helper()
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("store.Open() failed: %v", err)
	}
	defer s.Close()
	if err := s.Put(context.Background(), key, []byte(snapshot)); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
}

// ServeCatalog serves body with status on every request.
func ServeCatalog(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// WriteCatalogFile writes body to productos.json in a temp directory and
// returns its path.
func WriteCatalogFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "productos.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}
