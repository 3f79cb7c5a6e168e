package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asciidag/asciidag/pkg/cache"
	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/ingest/dot"
	"github.com/asciidag/asciidag/pkg/ingest/jsongraph"
	"github.com/asciidag/asciidag/pkg/ingest/mlgraph"
	"github.com/asciidag/asciidag/pkg/printer"
	"github.com/asciidag/asciidag/pkg/render"
	"github.com/asciidag/asciidag/pkg/store"
)

type renderOpts struct {
	format  string
	output  string
	noCache bool
	noStore bool
	spacing string
	spaces  int
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{spacing: c.Config.Printer.Spacing, spaces: c.Config.Printer.Spaces}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph as ASCII art",
		Long: `Render a graph as ASCII art.

The input format is detected from the file extension (.dot/.gv, .graphdef,
.json) or set explicitly with --format. Results are cached locally by
content hash, so re-rendering the same graph with the same options is
instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: dot, json, ml (default: detected from extension)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.noStore, "no-store", false, "don't persist this render for later retrieval")
	cmd.Flags().StringVar(&opts.spacing, "spacing", opts.spacing, "label spacing: fixed, justified, auto")
	cmd.Flags().IntVar(&opts.spaces, "spaces", opts.spaces, "spacing column count")

	return cmd
}

func detectFormat(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return "dot"
	case ".graphdef":
		return "ml"
	default:
		return "json"
	}
}

func parseGraph(ctx context.Context, format string, data []byte) (*graph.Graph[string], error) {
	switch format {
	case "dot":
		return dot.Parse(ctx, data)
	case "json":
		return jsongraph.Parse(ctx, strings.NewReader(string(data)))
	case "ml":
		return mlgraph.Parse(ctx, strings.NewReader(string(data)))
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}

func printerOptionsFromFlags(base printer.Options, opts *renderOpts) printer.Options {
	po := base
	po.Spaces = opts.spaces
	switch opts.spacing {
	case "fixed":
		po.Spacing = printer.Fixed
	case "justified":
		po.Spacing = printer.Justified
	default:
		po.Spacing = printer.AutoJustified
	}
	return po
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	format := detectFormat(input, opts.format)
	g, err := parseGraph(ctx, format, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", format, err)
	}
	logger.Infof("Loaded graph: %d nodes", g.Len())

	printerOpts := printerOptionsFromFlags(c.Config.PrinterOptions(), opts)

	progress := newProgress(logger)
	out, cached, err := c.renderWithCache(ctx, data, g, printerOpts, opts.noCache)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	progress.done("Rendered")

	if !opts.noStore {
		if err := c.persistRender(data, printerOpts, out); err != nil {
			logger.Warnf("store render: %v", err)
		}
	}

	if err := writeOutput(opts.output, out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Generated %s", opts.output)
	}
	printCacheStatus(cached)
	return nil
}

func (c *CLI) renderWithCache(ctx context.Context, data []byte, g *graph.Graph[string], opts printer.Options, noCache bool) (string, bool, error) {
	ch, err := c.newCache(noCache)
	if err != nil {
		return "", false, err
	}
	defer ch.Close()

	key := cache.Key(cache.Hash(data), cache.Hash([]byte(fmt.Sprintf("%+v", opts))))

	if cached, ok, err := ch.Get(ctx, key); err == nil && ok {
		return string(cached), true, nil
	}

	out, err := render.RenderContext(ctx, g, opts)
	if err != nil {
		return "", false, err
	}

	_ = ch.Set(ctx, key, []byte(out), 0)
	return out, false, nil
}

func (c *CLI) persistRender(data []byte, opts printer.Options, output string) error {
	st, err := c.newStore()
	if err != nil {
		return err
	}
	defer st.Close()

	rec := store.New(cache.Hash(data), opts, output)
	return st.Set(context.Background(), rec)
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Print(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0644)
}
