// Package http downloads the theme JSON schema published by Zed.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/maple"
)

// Compile-time interface verification.
var _ maple.SchemaFetcher = (*Fetcher)(nil)

// DefaultBaseURL is where theme schemas are published.
const DefaultBaseURL = "https://zed.dev/schema/themes"

// DefaultSchemaVersion is the schema version the compiled themes target.
const DefaultSchemaVersion = "v0.2.0"

// maxSchemaSize bounds the response body (4MB).
const maxSchemaSize = 4 * 1024 * 1024

// ErrNotJSON is returned when the response body is not a JSON object.
var ErrNotJSON = errors.New("schema response is not a JSON object")

// Fetcher implements maple.SchemaFetcher over HTTP.
type Fetcher struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBaseURL sets the schema base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(f *Fetcher) { f.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = hc }
}

// NewFetcher creates a Fetcher with the given options.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// URL returns the schema location for version.
func (f *Fetcher) URL(version string) string {
	if version == "" {
		version = DefaultSchemaVersion
	}
	return f.baseURL + "/" + version + ".json"
}

// Fetch downloads the schema for version. An empty version fetches
// DefaultSchemaVersion.
func (f *Fetcher) Fetch(ctx context.Context, version string) ([]byte, error) {
	url := f.URL(version)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schema: GET %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSchemaSize))
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
		return nil, fmt.Errorf("schema: GET %s: %w", url, ErrNotJSON)
	}
	return body, nil
}
