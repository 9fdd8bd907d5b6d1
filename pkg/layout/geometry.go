package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// Box is an axis-aligned rectangle in canvas units.
// All coordinates are top-left anchored, matching the canvas renderer.
type Box struct {
	X, Y float64
	W, H float64
}

// Right returns the X coordinate of the box's right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the Y coordinate of the box's bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center of the box.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the box.
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// BoxOf returns the node's box with size defaults applied.
// Nodes without an explicit size get the canvas default of 200x80.
func BoxOf(n *mindmap.Node) Box {
	b := Box{X: n.X, Y: n.Y, W: n.Width, H: n.Height}
	if b.W <= 0 {
		b.W = mindmap.DefaultWidth
	}
	if b.H <= 0 {
		b.H = mindmap.DefaultHeight
	}
	return b
}

// Overlaps reports whether the two boxes intersect after each has been
// inflated by padding on every side. Touching edges do not count as an
// intersection, so two boxes separated by exactly 2*padding are clear.
func Overlaps(a, b Box, padding float64) bool {
	return a.X-padding < b.Right()+padding &&
		b.X-padding < a.Right()+padding &&
		a.Y-padding < b.Bottom()+padding &&
		b.Y-padding < a.Bottom()+padding
}

// Bounds is the tight axis-aligned rectangle containing a set of node boxes.
type Bounds struct {
	MinX float64 `json:"min_x" bson:"min_x"`
	MinY float64 `json:"min_y" bson:"min_y"`
	MaxX float64 `json:"max_x" bson:"max_x"`
	MaxY float64 `json:"max_y" bson:"max_y"`
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Contains reports whether the box lies entirely within the bounds.
func (b Bounds) Contains(box Box) bool {
	return box.X >= b.MinX && box.Y >= b.MinY &&
		box.Right() <= b.MaxX && box.Bottom() <= b.MaxY
}

// AccumulateBounds computes the tight bounding rectangle of all node boxes
// in a single pass. An empty node list yields a degenerate zero-area box at
// the origin rather than infinities, so callers can always render the
// result.
func AccumulateBounds(nodes []mindmap.Node) Bounds {
	if len(nodes) == 0 {
		return Bounds{}
	}
	b := BoxOf(&nodes[0])
	out := Bounds{MinX: b.X, MinY: b.Y, MaxX: b.Right(), MaxY: b.Bottom()}
	for i := 1; i < len(nodes); i++ {
		b = BoxOf(&nodes[i])
		if b.X < out.MinX {
			out.MinX = b.X
		}
		if b.Y < out.MinY {
			out.MinY = b.Y
		}
		if r := b.Right(); r > out.MaxX {
			out.MaxX = r
		}
		if bt := b.Bottom(); bt > out.MaxY {
			out.MaxY = bt
		}
	}
	return out
}
