package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// Layout strategy names accepted by [Apply].
const (
	Balanced = "balanced"
	Tree     = "tree"
	Radial   = "radial"
)

// Spacing constants shared by the strategies. Both gaps exceed twice
// DefaultPadding, so strategy output already satisfies the overlap
// invariant before the resolution pass runs.
const (
	hGap = 80.0 // horizontal gap between depth levels
	vGap = 48.0 // vertical gap between sibling subtrees
)

// Options carries the placement anchor derived from the canvas dimensions.
// The dispatcher converts canvas width/height to a center point before any
// strategy runs.
type Options struct {
	CenterX float64
	CenterY float64
}

// nodeIndex maps node IDs to pointers into the mind map's node slice so
// strategies can position nodes in place. Duplicate IDs resolve to the
// first occurrence, matching the resolver.
func nodeIndex(m *mindmap.Mindmap) map[string]*mindmap.Node {
	idx := make(map[string]*mindmap.Node, len(m.Nodes))
	for i := range m.Nodes {
		n := &m.Nodes[i]
		if _, dup := idx[n.ID]; !dup {
			idx[n.ID] = n
		}
	}
	return idx
}

// subtreeHeight measures the vertical extent required by the subtree rooted
// at id: the node's own height, or the gap-separated sum of its children's
// subtree heights, whichever is larger. This is the bottom-up half of the
// measure-then-place technique; placement keeps every subtree inside the
// slot this function reserves for it.
func subtreeHeight(h *Hierarchy, idx map[string]*mindmap.Node, id string) float64 {
	own := BoxOf(idx[id]).H
	kids := h.Children(id)
	if len(kids) == 0 {
		return own
	}
	var total float64
	for i, c := range kids {
		if i > 0 {
			total += vGap
		}
		total += subtreeHeight(h, idx, c)
	}
	if total < own {
		return own
	}
	return total
}

// placeChildren assigns positions to the descendants of an already-placed
// node. Children stack vertically around the parent's center, each inside
// its measured slot; dir is +1 to grow rightward and -1 leftward.
func placeChildren(h *Hierarchy, idx map[string]*mindmap.Node, id string, dir int) {
	kids := h.Children(id)
	if len(kids) == 0 {
		return
	}
	parent := BoxOf(idx[id])

	var total float64
	heights := make([]float64, len(kids))
	for i, c := range kids {
		heights[i] = subtreeHeight(h, idx, c)
		if i > 0 {
			total += vGap
		}
		total += heights[i]
	}

	y := parent.CenterY() - total/2
	for i, c := range kids {
		child := idx[c]
		cb := BoxOf(child)
		if dir >= 0 {
			child.X = parent.Right() + hGap
		} else {
			child.X = parent.X - hGap - cb.W
		}
		child.Y = y + (heights[i]-cb.H)/2
		y += heights[i] + vGap
		placeChildren(h, idx, c, dir)
	}
}

// stackOrphans appends the orphan subtrees below startY, each centered
// horizontally on the layout anchor and laid out rightward inside its own
// measured slot. All strategies share this degenerate path so orphans are
// never dropped, only displaced out of the main composition.
func stackOrphans(h *Hierarchy, idx map[string]*mindmap.Node, opts Options, startY float64) {
	y := startY
	for _, id := range h.Orphans {
		n := idx[id]
		b := BoxOf(n)
		slot := subtreeHeight(h, idx, id)
		n.X = opts.CenterX - b.W/2
		n.Y = y + (slot-b.H)/2
		placeChildren(h, idx, id, +1)
		y += slot + vGap
	}
}

// orphanStackHeight measures the total vertical extent stackOrphans will
// use, including inter-subtree gaps.
func orphanStackHeight(h *Hierarchy, idx map[string]*mindmap.Node) float64 {
	var total float64
	for i, id := range h.Orphans {
		if i > 0 {
			total += vGap
		}
		total += subtreeHeight(h, idx, id)
	}
	return total
}

// finishOrphans places orphan subtrees after a strategy has positioned the
// reachable tree. With a root they stack below the occupied area; with no
// root at all (flat fallback) they become the whole layout, centered on the
// anchor point.
func finishOrphans(m *mindmap.Mindmap, h *Hierarchy, idx map[string]*mindmap.Node, opts Options, rootPlaced bool) {
	if len(h.Orphans) == 0 {
		return
	}
	if !rootPlaced {
		total := orphanStackHeight(h, idx)
		stackOrphans(h, idx, opts, opts.CenterY-total/2)
		return
	}
	placed := reachableBounds(m, h, idx)
	stackOrphans(h, idx, opts, placed.MaxY+vGap)
}

// reachableBounds accumulates bounds over the nodes already positioned by
// the main strategy pass (everything except orphan subtrees).
func reachableBounds(m *mindmap.Mindmap, h *Hierarchy, idx map[string]*mindmap.Node) Bounds {
	orphaned := make(map[string]bool, len(h.Orphans))
	for _, id := range h.Orphans {
		markSubtree(h, id, orphaned)
	}
	var placed []mindmap.Node
	for i := range m.Nodes {
		if !orphaned[m.Nodes[i].ID] {
			placed = append(placed, m.Nodes[i])
		}
	}
	return AccumulateBounds(placed)
}

func markSubtree(h *Hierarchy, id string, set map[string]bool) {
	set[id] = true
	for _, c := range h.Children(id) {
		markSubtree(h, c, set)
	}
}
