// Package mindmap defines the canonical data model for mind maps.
//
// A [Mindmap] is a flat node/edge list, optionally anchored by a RootID.
// It is the wire format between the layout engine (pkg/layout), the HTTP
// API, the persistence layer, and the canvas renderer: import → layout →
// export round-trips preserve node identity and content, with only the
// geometry fields (X, Y, Depth) rewritten.
//
// The format is deliberately permissive. Edges may reference nodes that
// have not arrived yet (the generation stream emits incrementally), parent
// references may be stale, and multiple nodes may look like roots. All of
// that is resolved downstream by the hierarchy resolver rather than
// rejected here; Validate only enforces what can never be repaired:
// non-empty, unique node identifiers.
package mindmap
