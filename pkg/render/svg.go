package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// Theme controls the visual style of canvas SVG output.
type Theme struct {
	Background   string
	NodeFill     string
	NodeStroke   string
	EdgeStroke   string
	TextColor    string
	FontFamily   string
	FontSize     float64
	CornerRadius float64
}

// DefaultTheme is the light canvas theme.
func DefaultTheme() Theme {
	return Theme{
		Background:   "#ffffff",
		NodeFill:     "#f5f3ef",
		NodeStroke:   "#2d2a26",
		EdgeStroke:   "#8a867f",
		TextColor:    "#2d2a26",
		FontFamily:   "Helvetica, Arial, sans-serif",
		FontSize:     14,
		CornerRadius: 8,
	}
}

// DarkTheme is the dark canvas theme.
func DarkTheme() Theme {
	return Theme{
		Background:   "#1e1c1a",
		NodeFill:     "#2d2a26",
		NodeStroke:   "#d8d4cd",
		EdgeStroke:   "#6f6a62",
		TextColor:    "#f0ede8",
		FontFamily:   "Helvetica, Arial, sans-serif",
		FontSize:     14,
		CornerRadius: 8,
	}
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme     Theme
	margin    float64
	showEdges bool
}

// WithTheme selects the visual theme.
func WithTheme(t Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }

// WithMargin sets the whitespace around the layout bounds.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithoutEdges omits connector curves between parents and children.
func WithoutEdges() SVGOption { return func(r *svgRenderer) { r.showEdges = false } }

// CanvasSVG renders a positioned mind map to SVG using the engine's exact
// geometry. The viewport is the layout bounds plus a margin; coordinates are
// shifted so the output is self-contained regardless of where on the canvas
// the layout landed.
func CanvasSVG(m *mindmap.Mindmap, res layout.Result, opts ...SVGOption) []byte {
	r := svgRenderer{theme: DefaultTheme(), margin: 40, showEdges: true}
	for _, opt := range opts {
		opt(&r)
	}

	b := res.Bounds
	width := b.Width() + 2*r.margin
	height := b.Height() + 2*r.margin
	// Shift everything so the top-left of the bounds sits at (margin, margin).
	dx := r.margin - b.MinX
	dy := r.margin - b.MinY

	boxes := make(map[string]layout.Box, len(res.Nodes))
	for i := range res.Nodes {
		boxes[res.Nodes[i].ID] = layout.BoxOf(&res.Nodes[i])
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)

	if r.showEdges {
		renderEdges(&buf, &r, m, boxes, dx, dy)
	}
	renderNodes(&buf, &r, res.Nodes, dx, dy)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderEdges draws one cubic connector per edge whose endpoints both exist.
// The curve leaves the source box horizontally toward the target, which reads
// naturally for the side-fanning strategies and acceptably for radial.
func renderEdges(buf *bytes.Buffer, r *svgRenderer, m *mindmap.Mindmap, boxes map[string]layout.Box, dx, dy float64) {
	fmt.Fprintf(buf, `  <g fill="none" stroke="%s" stroke-width="1.5">`+"\n", r.theme.EdgeStroke)
	for _, e := range m.Edges {
		src, ok := boxes[e.Source]
		if !ok {
			continue
		}
		dst, ok := boxes[e.Target]
		if !ok {
			continue
		}

		x1, y1 := src.CenterX()+dx, src.CenterY()+dy
		x2, y2 := dst.CenterX()+dx, dst.CenterY()+dy
		midX := (x1 + x2) / 2
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f"/>`+"\n",
			x1, y1, midX, y1, midX, y2, x2, y2)
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, r *svgRenderer, nodes []mindmap.Node, dx, dy float64) {
	for i := range nodes {
		n := &nodes[i]
		box := layout.BoxOf(n)

		fill := r.theme.NodeFill
		if n.Color != "" {
			fill = n.Color
		}

		fmt.Fprintf(buf, `  <g id="node-%s">`+"\n", escapeXML(n.ID))
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			box.X+dx, box.Y+dy, box.W, box.H, r.theme.CornerRadius, fill, r.theme.NodeStroke)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
			box.CenterX()+dx, box.CenterY()+dy, r.theme.FontFamily, r.theme.FontSize, r.theme.TextColor, escapeXML(n.DisplayLabel()))
		buf.WriteString("  </g>\n")
	}
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
