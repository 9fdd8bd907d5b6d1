// Package render exports positioned mind maps as images.
//
// # Overview
//
// Two export paths are available:
//
//   - [CanvasSVG] writes SVG directly from the engine's node positions, so
//     the exported image matches the interactive canvas exactly.
//   - [ToDOT] converts the map structure to Graphviz DOT; [RenderSVG] runs
//     Graphviz on it for a hierarchical diagram independent of the canvas
//     geometry.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They apply to both export
// paths.
//
//	svg := render.CanvasSVG(m, res)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
package render
