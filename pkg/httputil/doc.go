// Package httputil provides HTTP utilities for remote mind map sources.
//
// # Overview
//
// This package provides infrastructure used when maps are loaded over HTTP:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/mindweave/)
// with configurable TTL. This speeds up repeated operations on the same
// remote map and keeps the CLI usable on flaky connections.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("map:"+url, &m)  // Check cache
//	if !ok {
//	    m = fetchFromURL(url)
//	    cache.Set("map:"+url, m)          // Store for later
//	}
//
// Cache keys should be namespaced by source to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//
// It uses exponential backoff, doubling the delay after each attempt:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetch()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/mindweave/
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `mindweave cache clear` or by deleting
// the cache directory.
package httputil
