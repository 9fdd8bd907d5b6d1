package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/pipeline"
)

// renderCommand creates the render command for generating output files
// directly from a mind map.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		refresh    bool
	)
	opts := c.optionsFromConfig()

	cmd := &cobra.Command{
		Use:   "render [map.json]",
		Short: "Lay out a mind map and render it to output files",
		Long: `Lay out a mind map and render it to output files.

The render command runs the complete pipeline: it loads the map, computes
node positions with the selected strategy, and writes one output file per
requested format. Use 'layout' and 'visualize' to run the stages separately.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			opts.Refresh = refresh
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "layout strategy: balanced (default), tree, radial")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "canvas width")
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "canvas height")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "canvas theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.HideEdges, "hide-edges", opts.HideEdges, "omit connector edges from the canvas")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "include depth and status in DOT labels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution multiplier")

	return cmd
}

// runRender executes the full pipeline and writes the artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	m, err := c.loadMap(ctx, input, opts.Refresh)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s layout...", opts.Strategy))
	spinner.Start()

	result, err := runner.Execute(ctx, m, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		nodeCount: result.Stats.NodeCount,
		edgeCount: result.Stats.EdgeCount,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	nodeCount int
	edgeCount int
	cacheHit  bool
}

// writeArtifacts writes one file per format and prints a summary. With a
// single format the output flag names the file directly; with several it
// acts as a base path.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	var written []string
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}

		path := base + "." + format
		if p.output != "" && len(p.formats) == 1 {
			path = p.output
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Render complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(p.nodeCount, p.edgeCount, p.cacheHit)

	return nil
}

// basePath derives the base output path from the output and input paths.
// A format extension on the output path is stripped so multi-format runs
// produce sibling files.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
