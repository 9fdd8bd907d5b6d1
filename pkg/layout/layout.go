package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// DefaultPadding is the clearance the post-placement overlap pass enforces
// between same-depth boxes. It matches the guarantee band the canvas
// renderer assumes when drawing selection halos around nodes.
const DefaultPadding = 20.0

// Result is a positioned mind map: the same nodes that went in, with
// geometry rewritten, plus the tight bounding rectangle of all boxes.
// RootID names the node the layout was anchored on; when the input map
// carried no explicit root it is the one the resolver inferred, and it is
// empty only for maps where no root exists at all.
type Result struct {
	Nodes  []mindmap.Node `json:"nodes" bson:"nodes"`
	Bounds Bounds         `json:"bounds" bson:"bounds"`
	RootID string         `json:"root_id,omitempty" bson:"root_id,omitempty"`
}

// Apply positions every node of the mind map in place and returns the
// positioned nodes together with their bounds. This is the engine's public
// entry point; the strategies, resolver, and overlap pass all run behind
// it.
//
// kind selects the strategy ("balanced", "tree" or "radial"); anything
// else falls back to balanced, since the caller's strategy selector may
// race with data updates and a stale value must not take down the canvas.
// Canvas dimensions are converted to a center anchor before the strategy
// runs.
//
// Apply never fails: malformed structure degrades per the resolver's
// documented defaults, an empty map comes back unchanged, and a nil map
// yields an empty result. It holds no state between calls - the same input
// always produces the same output.
func Apply(m *mindmap.Mindmap, kind string, canvasWidth, canvasHeight float64) Result {
	if m == nil {
		return Result{}
	}
	if len(m.Nodes) == 0 {
		return Result{Nodes: m.Nodes}
	}

	h := Resolve(m)
	opts := Options{CenterX: canvasWidth / 2, CenterY: canvasHeight / 2}

	switch kind {
	case Tree:
		treeLayout(m, &h, opts)
	case Radial:
		radialLayout(m, &h, opts)
	default:
		balancedLayout(m, &h, opts)
	}

	// The resolver's depths are authoritative; write them back so callers
	// and the overlap pass see the same hierarchy the strategy used.
	for i := range m.Nodes {
		if d, ok := h.DepthOf[m.Nodes[i].ID]; ok {
			m.Nodes[i].Depth = d
		}
	}

	ResolveOverlaps(m.Nodes, h.DepthOf, DefaultPadding)

	var rootID string
	if h.Root != nil {
		rootID = h.Root.ID
	}

	return Result{
		Nodes:  m.Nodes,
		Bounds: AccumulateBounds(m.Nodes),
		RootID: rootID,
	}
}
