package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoProducts = `[
	{"id": 1, "nombre": "Laptop Gamer", "precio": 1500, "imagen": "💻"},
	{"id": 2, "nombre": "Mouse Óptico", "precio": 40, "imagen": "🖱️"}
]`

func serveCatalog(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRemote_LoadOverHTTP(t *testing.T) {
	srv := serveCatalog(t, http.StatusOK, twoProducts)

	src, err := NewRemote(srv.URL+"/productos.json", WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	products, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Mouse Óptico", products[1].Name)
}

func TestRemote_SingleRequestPerLoad(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src, err := NewRemote(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "failed load must not retry")
}

func TestRemote_LoadFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		op     string
	}{
		{"server error", http.StatusInternalServerError, "", "fetch"},
		{"not found", http.StatusNotFound, "missing", "fetch"},
		{"malformed json", http.StatusOK, `[{"id":`, "decode"},
		{"object instead of array", http.StatusOK, `{"productos": []}`, "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveCatalog(t, tt.status, tt.body)
			src, err := NewRemote(srv.URL, WithHTTPClient(srv.Client()))
			require.NoError(t, err)

			products, err := src.Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, products)
			assert.True(t, errors.Is(err, ErrLoadFailure))

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, tt.op, loadErr.Op)
			assert.Equal(t, srv.URL, loadErr.Location)
		})
	}
}

func TestRemote_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	location := srv.URL
	srv.Close()

	src, err := NewRemote(location)
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailure)
}

func TestRemote_CanceledContext(t *testing.T) {
	srv := serveCatalog(t, http.StatusOK, twoProducts)
	src, err := NewRemote(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = src.Load(ctx)
	assert.ErrorIs(t, err, ErrLoadFailure)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemote_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productos.json")
	require.NoError(t, os.WriteFile(path, []byte(twoProducts), 0o644))

	for _, location := range []string{path, "file://" + path} {
		t.Run(location, func(t *testing.T) {
			src, err := NewRemote(location)
			require.NoError(t, err)

			products, err := src.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, products, 2)
		})
	}
}

func TestRemote_MissingFile(t *testing.T) {
	src, err := NewRemote(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoadFailure)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRemote_UnsupportedScheme(t *testing.T) {
	src, err := NewRemote("ftp://example.com/productos.json")
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	require.ErrorIs(t, err, ErrLoadFailure)
	assert.Contains(t, err.Error(), "unsupported scheme")
}
