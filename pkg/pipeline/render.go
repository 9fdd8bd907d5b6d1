package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/render"
)

// =============================================================================
// Rendering
// =============================================================================

// RenderFromLayout renders all requested formats from a positioned layout.
// SVG, PNG and PDF use the canvas renderer so exports match the interactive
// canvas; DOT is a structural Graphviz export; JSON is the raw layout result.
func RenderFromLayout(m *mindmap.Mindmap, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var canvas []byte // built lazily, shared by svg/png/pdf
	canvasSVG := func() []byte {
		if canvas == nil {
			canvas = render.CanvasSVG(m, res, svgOptions(opts)...)
		}
		return canvas
	}

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = canvasSVG()

		case FormatPNG:
			data, err := render.ToPNG(canvasSVG(), opts.Scale)
			if err != nil {
				return nil, fmt.Errorf("render png: %w", err)
			}
			artifacts[format] = data

		case FormatPDF:
			data, err := render.ToPDF(canvasSVG())
			if err != nil {
				return nil, fmt.Errorf("render pdf: %w", err)
			}
			artifacts[format] = data

		case FormatDOT:
			artifacts[format] = []byte(render.ToDOT(m, render.Options{Detailed: opts.Detailed}))

		case FormatJSON:
			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("render json: %w", err)
			}
			artifacts[format] = data

		default:
			return nil, fmt.Errorf("invalid format: %q", format)
		}
	}

	return artifacts, nil
}

func svgOptions(opts Options) []render.SVGOption {
	var svgOpts []render.SVGOption
	if opts.Theme == "dark" {
		svgOpts = append(svgOpts, render.WithTheme(render.DarkTheme()))
	}
	if opts.HideEdges {
		svgOpts = append(svgOpts, render.WithoutEdges())
	}
	return svgOpts
}
