package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a
// previously computed layout file.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := c.optionsFromConfig()

	cmd := &cobra.Command{
		Use:   "visualize [map.layout.json]",
		Short: "Render output files from a computed layout",
		Long: `Render output files from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to the requested formats. The file carries all positioning
information, so this step is purely about rendering.

Use 'render' as a shortcut to go directly from map.json to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "canvas theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.HideEdges, "hide-edges", opts.HideEdges, "omit connector edges from the canvas")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution multiplier")

	return cmd
}

// runVisualize loads the layout file and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	m, res, strategy, err := pipeline.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	if strategy != "" {
		opts.Strategy = strategy
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering layout...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, m, res, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		nodeCount: m.NodeCount(),
		edgeCount: m.EdgeCount(),
		cacheHit:  cacheHit,
	})
}
