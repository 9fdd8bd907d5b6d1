package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// balancedLayout places the root at the layout anchor and fans its subtrees
// out to both sides, mind-map style.
//
// The root's direct children are split into a left and a right group. The
// size difference between the groups never exceeds one, whatever the child
// count; within that constraint the tie-break is deterministic: a child
// joins the side with fewer direct children so far, and when both sides are
// even, the side carrying fewer total descendants, with the right side
// winning exact ties. Each side then stacks its subtrees vertically using
// the shared measure-then-place passes, growing strictly outward from the
// center with every depth level.
func balancedLayout(m *mindmap.Mindmap, h *Hierarchy, opts Options) {
	idx := nodeIndex(m)
	if h.Root == nil {
		finishOrphans(m, h, idx, opts, false)
		return
	}

	root := idx[h.Root.ID]
	rb := BoxOf(root)
	root.X = opts.CenterX - rb.W/2
	root.Y = opts.CenterY - rb.H/2

	left, right := splitSides(h, h.Children(root.ID))
	placeSide(h, idx, root, right, +1, opts)
	placeSide(h, idx, root, left, -1, opts)

	finishOrphans(m, h, idx, opts, true)
}

// splitSides partitions the ordered children into left and right groups.
// |len(left)-len(right)| <= 1 holds for any input length.
func splitSides(h *Hierarchy, kids []string) (left, right []string) {
	var leftWeight, rightWeight int
	for _, id := range kids {
		size := h.SubtreeSize(id)
		switch {
		case len(left) < len(right):
			left = append(left, id)
			leftWeight += size
		case len(right) < len(left):
			right = append(right, id)
			rightWeight += size
		case leftWeight < rightWeight:
			left = append(left, id)
			leftWeight += size
		default:
			right = append(right, id)
			rightWeight += size
		}
	}
	return left, right
}

// placeSide stacks one side's subtrees vertically, centered on the root's
// vertical center, then recurses outward.
func placeSide(h *Hierarchy, idx map[string]*mindmap.Node, root *mindmap.Node, side []string, dir int, opts Options) {
	if len(side) == 0 {
		return
	}
	rb := BoxOf(root)

	var total float64
	heights := make([]float64, len(side))
	for i, c := range side {
		heights[i] = subtreeHeight(h, idx, c)
		if i > 0 {
			total += vGap
		}
		total += heights[i]
	}

	y := rb.CenterY() - total/2
	for i, c := range side {
		child := idx[c]
		cb := BoxOf(child)
		if dir >= 0 {
			child.X = rb.Right() + hGap
		} else {
			child.X = rb.X - hGap - cb.W
		}
		child.Y = y + (heights[i]-cb.H)/2
		y += heights[i] + vGap
		placeChildren(h, idx, c, dir)
	}
}
