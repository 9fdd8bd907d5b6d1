package cli

import (
	"context"
	"fmt"

	"github.com/mindweave/mindweave/pkg/httputil"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/pipeline"
	"github.com/mindweave/mindweave/pkg/remote"
)

// loadMap loads a mind map from a local file or an HTTP(S) URL. Remote
// fetches go through the file-backed HTTP cache; refresh forces a re-fetch.
func (c *CLI) loadMap(ctx context.Context, source string, refresh bool) (*mindmap.Mindmap, error) {
	if remote.IsURL(source) {
		cache, err := httputil.NewCache("", remote.DefaultTTL)
		if err != nil {
			cache = nil // fetch uncached
		}
		m, err := remote.NewClient(cache).Fetch(ctx, source, refresh)
		if err != nil {
			return nil, fmt.Errorf("fetch map %s: %w", source, err)
		}
		return m, nil
	}

	m, err := pipeline.LoadFile(source)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", source, err)
	}
	return m, nil
}
