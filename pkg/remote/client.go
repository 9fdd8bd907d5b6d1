// Package remote loads mind maps from HTTP sources.
//
// The client caches fetched maps on disk and retries transient failures,
// so repeated layout runs against the same URL stay fast and survive
// flaky connections.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindweave/mindweave/pkg/httputil"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

const httpTimeout = 10 * time.Second

// DefaultTTL is how long fetched maps stay fresh in the local cache.
const DefaultTTL = time.Hour

var (
	// ErrNotFound is returned when the source URL does not exist.
	ErrNotFound = errors.New("map not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Client fetches mind maps over HTTP with caching and retries.
type Client struct {
	http  *http.Client
	cache *httputil.Cache
}

// NewClient creates a client backed by the given cache. Pass nil to fetch
// without caching.
func NewClient(cache *httputil.Cache) *Client {
	if cache != nil {
		cache = cache.Namespace("map:")
	}
	return &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: cache,
	}
}

// IsURL reports whether source names an HTTP or HTTPS location.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch downloads and validates the mind map at url. Fresh cached copies
// are returned without a network round trip; refresh forces a re-fetch.
func (c *Client) Fetch(ctx context.Context, url string, refresh bool) (*mindmap.Mindmap, error) {
	if !refresh && c.cache != nil {
		var m mindmap.Mindmap
		if ok, _ := c.cache.Get(url, &m); ok {
			if err := m.Validate(); err == nil {
				return &m, nil
			}
		}
	}

	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		var fetchErr error
		data, fetchErr = c.get(ctx, url)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	m, err := mindmap.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("parse map from %s: %w", url, err)
	}

	if c.cache != nil {
		_ = c.cache.Set(url, m)
	}
	return m, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
