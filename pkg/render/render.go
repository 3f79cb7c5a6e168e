package render

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/asciidag/asciidag/pkg/canvas"
	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/layout"
	"github.com/asciidag/asciidag/pkg/observability"
	"github.com/asciidag/asciidag/pkg/printer"
)

// ErrInvalidConfig is returned by [Render] when the supplied options are
// not self-consistent (for example a negative Spaces value).
var ErrInvalidConfig = errors.New("render: invalid config")

// Render turns g into its ASCII representation, running the graph validation,
// layout planning, canvas drawing, and printing stages in sequence. The
// returned string always ends in a trailing newline; an empty graph renders
// to a single newline.
//
// Render validates g is acyclic before any layout work: rendering a
// cyclic graph is undefined, and surfacing that early (as
// [graph.ErrCyclicInput]) is cheaper than debugging a pipeline stage that
// assumed an acyclic input.
func Render[N cmp.Ordered](g *graph.Graph[N], opts printer.Options) (string, error) {
	return RenderContext[N](context.Background(), g, opts)
}

// RenderContext is [Render] with an explicit context, used to propagate
// cancellation and to let observability hooks attach request-scoped
// metadata.
func RenderContext[N cmp.Ordered](ctx context.Context, g *graph.Graph[N], opts printer.Options) (string, error) {
	if opts.Spaces < 0 {
		return "", ErrInvalidConfig
	}

	nodeCount := g.Len()
	observability.Render().OnRenderStart(ctx, nodeCount)
	start := time.Now()

	out, err := render(g, opts)

	observability.Render().OnRenderComplete(ctx, nodeCount, time.Since(start), err)
	return out, err
}

func render[N cmp.Ordered](g *graph.Graph[N], opts printer.Options) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}

	if g.Len() == 0 {
		return "\n", nil
	}

	plans := layout.BuildPlan(g)
	cursors := layout.BuildCursors(g, plans)
	rows := canvas.Draw(g, cursors)
	return printer.Print(rows, opts), nil
}
