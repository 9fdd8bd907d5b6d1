package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// treeLayout places the hierarchy left to right, flowchart style: depth
// maps to strictly increasing x, and every parent sits on the vertical
// center of its children.
//
// Columns are sized per depth level (the widest box at that depth), so a
// child's x always clears its parent's right edge by at least the level
// gap. Vertical placement reuses the shared measure-then-place passes.
func treeLayout(m *mindmap.Mindmap, h *Hierarchy, opts Options) {
	idx := nodeIndex(m)
	if h.Root == nil {
		finishOrphans(m, h, idx, opts, false)
		return
	}

	colWidth := columnWidths(h, idx, h.Root.ID)
	colX := make([]float64, len(colWidth))
	var total float64
	for d := range colWidth {
		colX[d] = total
		total += colWidth[d]
		if d < len(colWidth)-1 {
			total += hGap
		}
	}
	startX := opts.CenterX - total/2

	root := idx[h.Root.ID]
	rb := BoxOf(root)
	root.X = startX
	root.Y = opts.CenterY - rb.H/2
	placeColumns(h, idx, h.Root.ID, 0, startX, colX, colWidth)

	finishOrphans(m, h, idx, opts, true)
}

// columnWidths returns the maximum box width per depth level of the
// subtree rooted at id.
func columnWidths(h *Hierarchy, idx map[string]*mindmap.Node, id string) []float64 {
	var widths []float64
	var walk func(id string, depth int)
	walk = func(id string, depth int) {
		for len(widths) <= depth {
			widths = append(widths, 0)
		}
		if w := BoxOf(idx[id]).W; w > widths[depth] {
			widths[depth] = w
		}
		for _, c := range h.Children(id) {
			walk(c, depth+1)
		}
	}
	walk(id, 0)
	return widths
}

// placeColumns assigns positions to the descendants of an already-placed
// node, one column per depth level, each subtree centered on its parent.
func placeColumns(h *Hierarchy, idx map[string]*mindmap.Node, id string, depth int, startX float64, colX, colWidth []float64) {
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
		child.X = startX + colX[depth+1]
		child.Y = y + (heights[i]-cb.H)/2
		y += heights[i] + vGap
		placeColumns(h, idx, c, depth+1, startX, colX, colWidth)
	}
}
