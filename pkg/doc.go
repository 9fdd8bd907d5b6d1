// Package pkg provides the core libraries for Mindweave mind map layout
// and rendering.
//
// # Overview
//
// Mindweave takes a mind map (nodes plus parent edges), resolves the node
// hierarchy, computes a spatial layout, and renders the result. The pkg
// directory is organized into these areas:
//
//  1. [mindmap] - The mind map document model and JSON codec
//  2. [layout] - Hierarchy resolution, layout strategies, overlap resolution
//  3. [render] - Output formats (SVG, DOT, PNG, PDF)
//  4. [pipeline] - Orchestration (load → layout → render) with caching
//  5. [cache] / [store] - Caching and document persistence backends
//
// # Architecture
//
// The typical data flow through Mindweave:
//
//	Mind map JSON (file, URL, or document store)
//	         ↓
//	    [layout] package (resolve hierarchy, position nodes)
//	         ↓
//	    [render] package (SVG/DOT/PNG/PDF output)
//
// # Quick Start
//
// Load a mind map, compute a layout, and render it to SVG:
//
//	import (
//	    "github.com/mindweave/mindweave/pkg/layout"
//	    "github.com/mindweave/mindweave/pkg/mindmap"
//	    "github.com/mindweave/mindweave/pkg/render"
//	)
//
//	m, _ := mindmap.ReadFile("plan.json")
//	res := layout.Apply(m, layout.Balanced, 1200, 800)
//	svg := render.CanvasSVG(m, res)
//
// # Main Packages
//
// [mindmap] - Document model: nodes, edges, validation, JSON round-tripping.
//
// [layout] - The layout engine. Resolves the parent hierarchy from edges and
// explicit parent IDs, then positions nodes with one of three strategies
// (balanced, tree, radial), followed by overlap resolution.
//
// [render] - SVG canvas rendering, Graphviz DOT export, and raster
// conversion (PNG, PDF).
//
// [pipeline] - The shared load → layout → render pipeline used by the CLI
// and the HTTP server, with content-addressed caching of layouts and
// rendered artifacts.
//
// [cache] - Cache backends: file, memory, Redis, and a null cache.
//
// [store] - Document persistence: in-memory and MongoDB backends.
//
// [remote] - Fetching mind maps over HTTP with caching and retries.
//
// [errors] - Coded errors shared across the CLI and the HTTP API.
//
// [observability] - Pluggable hooks for cache, pipeline, and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//
// [mindmap]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/mindmap
// [layout]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/layout
// [render]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/cache
// [store]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/store
// [remote]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/remote
// [errors]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/observability
package pkg
