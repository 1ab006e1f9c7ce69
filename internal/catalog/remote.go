package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"go.uber.org/zap"
)

// maxDocumentSize caps how much of a catalog document is read.
const maxDocumentSize = 4 << 20

// Remote loads the catalog from a JSON document. Location may be an
// http(s) URL, a file:// URL, or a plain filesystem path.
//
// Load issues exactly one request per call and never retries. It imposes no
// timeout of its own; callers bound it through ctx.
type Remote struct {
	location string
	client   *http.Client
	schema   *Schema
	logger   *zap.Logger
}

// RemoteOption configures a Remote.
type RemoteOption func(*Remote)

// WithHTTPClient sets the client used for http(s) locations.
func WithHTTPClient(c *http.Client) RemoteOption {
	return func(r *Remote) { r.client = c }
}

// WithLogger sets the logger used to report dropped entries.
func WithLogger(l *zap.Logger) RemoteOption {
	return func(r *Remote) { r.logger = l }
}

// NewRemote creates a Remote source for location.
func NewRemote(location string, opts ...RemoteOption) (*Remote, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}
	r := &Remote{
		location: location,
		client:   http.DefaultClient,
		schema:   schema,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Location returns the configured document location.
func (r *Remote) Location() string {
	return r.location
}

// Load fetches and decodes the catalog. Every failure is a *LoadError that
// matches ErrLoadFailure; no partial catalog is returned alongside it.
func (r *Remote) Load(ctx context.Context) ([]Product, error) {
	data, err := r.fetch(ctx)
	if err != nil {
		return nil, &LoadError{Location: r.location, Op: "fetch", Err: err}
	}

	products, rejected, err := r.schema.Decode(data)
	if err != nil {
		return nil, &LoadError{Location: r.location, Op: "decode", Err: err}
	}
	for _, e := range rejected {
		r.logger.Warn("Dropping invalid catalog entry",
			zap.String("location", r.location),
			zap.Int("index", e.Index),
			zap.Error(e.Err))
	}

	r.logger.Debug("Catalog loaded",
		zap.String("location", r.location),
		zap.Int("products", len(products)),
		zap.Int("rejected", len(rejected)))
	return products, nil
}

func (r *Remote) fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(r.location)
	if err != nil || u.Scheme == "" {
		return readFile(r.location)
	}

	switch u.Scheme {
	case "http", "https":
		return r.get(ctx, u.String())
	case "file":
		return readFile(u.Path)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
}

func (r *Remote) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}
