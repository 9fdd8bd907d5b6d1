// Package layout is the mind-map layout engine: it takes an unpositioned
// hierarchy of concept nodes and assigns each node a deterministic,
// non-overlapping position on the canvas.
//
// The engine is a pure, synchronous computation. [Apply] resolves the
// node/edge list into a rooted hierarchy, dispatches to one of three
// placement strategies, runs a collision-relief pass, and returns the
// positioned nodes with their bounding rectangle. Nothing is cached
// between calls; callers own debouncing and memoization.
//
// # Strategies
//
//   - balanced: root in the middle, children fanned out to both sides with
//     at most one node of imbalance between the sides.
//   - tree: left-to-right flowchart placement, depth mapping to strictly
//     increasing x.
//   - radial: concentric rings per depth, angular arcs proportional to
//     subtree weight.
//
// All three share a measure-then-place technique: a bottom-up pass
// computes the extent each subtree needs, then a top-down pass assigns
// disjoint slots. That is what guarantees collision-free output without
// iterative relaxation.
//
// # Degradation policy
//
// The engine sits in a reactive recomputation path, so it never returns an
// error. Dangling edges are ignored, ambiguous roots fall back to array
// order, unknown strategy names fall back to balanced, and nodes
// unreachable from the root are appended below the main composition rather
// than dropped. The generation stream may deliver a node before its parent
// edge; completeness wins over strict tree purity.
package layout
