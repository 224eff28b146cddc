// Package openapi loads OpenAPI documents as raw text. Nothing is parsed
// locally; conversion is left to the vendor import endpoint.
package openapi

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/loykin/demosync/internal/httpc"
)

// Loader fetches documents from URLs or the local filesystem.
type Loader struct {
	http *resty.Client
}

// NewLoader returns a Loader using a plain resty client.
func NewLoader() *Loader {
	return &Loader{http: (&httpc.Httpc{}).New()}
}

// NewLoaderWithResty returns a Loader using rc for remote sources.
func NewLoaderWithResty(rc *resty.Client) *Loader {
	return &Loader{http: rc}
}

// HTTPClient returns the client used for remote sources.
func (l *Loader) HTTPClient() *resty.Client {
	return l.http
}

// IsRemote reports whether source is fetched over HTTP. Any value starting
// with "http" counts, matching both http:// and https://.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http")
}

// Load returns the document at source as text.
func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	if IsRemote(source) {
		return l.fetch(ctx, source)
	}
	clean := filepath.Clean(source)
	info, err := os.Stat(clean)
	if err != nil {
		return "", fmt.Errorf("openapi source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("openapi source: not a regular file: %s", clean)
	}
	// #nosec G304 -- the path is supplied intentionally by the operator
	data, err := os.ReadFile(clean)
	if err != nil {
		return "", fmt.Errorf("openapi source: %w", err)
	}
	return string(data), nil
}

func (l *Loader) fetch(ctx context.Context, url string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := l.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch openapi document: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("fetch openapi document %s: unexpected status %d", url, resp.StatusCode())
	}
	return string(resp.Body()), nil
}
