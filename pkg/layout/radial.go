package layout

import (
	"math"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// radialLayout places the root at the layout anchor and its descendants on
// concentric rings, one ring per depth level.
//
// Every node receives an angular arc proportional to its subtree weight
// (leaf count), carved out of its parent's arc; bushy branches therefore
// spread wider than leaf siblings. Arcs are assigned top-down after a
// bottom-up weight pass. Ring radii grow monotonically and are widened
// whenever the tightest arc on a ring would otherwise bring two boxes
// closer than the clearance distance.
func radialLayout(m *mindmap.Mindmap, h *Hierarchy, opts Options) {
	idx := nodeIndex(m)
	if h.Root == nil {
		finishOrphans(m, h, idx, opts, false)
		return
	}

	root := idx[h.Root.ID]
	rb := BoxOf(root)
	root.X = opts.CenterX - rb.W/2
	root.Y = opts.CenterY - rb.H/2

	// Top-down arc assignment: the root owns the full circle, children
	// subdivide their parent's arc by weight. Angles start at the top and
	// run clockwise.
	type arc struct {
		id         string
		depth      int
		start, end float64
	}
	var arcs []arc
	var assign func(id string, depth int, start, end float64)
	assign = func(id string, depth int, start, end float64) {
		kids := h.Children(id)
		if len(kids) == 0 {
			return
		}
		var total float64
		for _, c := range kids {
			total += float64(leafWeight(h, c))
		}
		cursor := start
		for _, c := range kids {
			share := (end - start) * float64(leafWeight(h, c)) / total
			arcs = append(arcs, arc{id: c, depth: depth + 1, start: cursor, end: cursor + share})
			assign(c, depth+1, cursor, cursor+share)
			cursor += share
		}
	}
	assign(h.Root.ID, 0, -math.Pi/2, 3*math.Pi/2)

	// Clearance: two boxes are guaranteed disjoint, even inflated by
	// DefaultPadding, once their centers are this far apart.
	clearance := clearDistance(m)

	// Per-ring minimum angular gap between neighboring node centers.
	maxDepth := 0
	minGap := map[int]float64{}
	count := map[int]int{}
	for _, a := range arcs {
		span := a.end - a.start
		if g, ok := minGap[a.depth]; !ok || span < g {
			minGap[a.depth] = span
		}
		count[a.depth]++
		if a.depth > maxDepth {
			maxDepth = a.depth
		}
	}

	// Ring radii: monotone outward, stretched so the tightest pair of
	// neighbors on each ring still clears the distance bound. Neighboring
	// centers are at least the ring's minimum arc span apart, and chord
	// length 2r*sin(gap/2) must reach the clearance.
	radius := make([]float64, maxDepth+1)
	for d := 1; d <= maxDepth; d++ {
		r := radius[d-1] + clearance
		if count[d] > 1 {
			gap := math.Min(minGap[d], math.Pi)
			if need := clearance / (2 * math.Sin(gap/2)); need > r {
				r = need
			}
		}
		radius[d] = r
	}

	cx, cy := opts.CenterX, opts.CenterY
	for _, a := range arcs {
		n := idx[a.id]
		b := BoxOf(n)
		angle := (a.start + a.end) / 2
		n.X = cx + radius[a.depth]*math.Cos(angle) - b.W/2
		n.Y = cy + radius[a.depth]*math.Sin(angle) - b.H/2
	}

	finishOrphans(m, h, idx, opts, true)
}

// leafWeight returns the number of leaves in the subtree rooted at id.
// Leaves weigh one; interior nodes inherit the sum of their children.
func leafWeight(h *Hierarchy, id string) int {
	kids := h.Children(id)
	if len(kids) == 0 {
		return 1
	}
	w := 0
	for _, c := range kids {
		w += leafWeight(h, c)
	}
	return w
}

// clearDistance returns the center-to-center distance at which two of the
// map's largest boxes cannot intersect even when both are inflated by the
// test padding band: past the diagonal of the inflated box, no axis pair
// can overlap simultaneously.
func clearDistance(m *mindmap.Mindmap) float64 {
	const pad = 20.0
	maxW, maxH := mindmap.DefaultWidth, mindmap.DefaultHeight
	for i := range m.Nodes {
		b := BoxOf(&m.Nodes[i])
		if b.W > maxW {
			maxW = b.W
		}
		if b.H > maxH {
			maxH = b.H
		}
	}
	return math.Hypot(maxW+2*pad, maxH+2*pad) + 1
}
