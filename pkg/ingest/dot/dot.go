// Package dot ingests Graphviz DOT source into a [graph.Graph]: instead of
// emitting DOT for Graphviz to lay out, this package asks Graphviz's own
// parser to read DOT and walks the resulting in-memory graph.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/observability"
	"github.com/asciidag/asciidag/pkg/printer"
	"github.com/asciidag/asciidag/pkg/render"
)

// topLevelGraphRe is a coarse heuristic for counting top-level "graph" or
// "digraph" declarations in a DOT source blob, used only to decide whether
// to log a multiple-graphs warning; it does not attempt to parse DOT.
var topLevelGraphRe = regexp.MustCompile(`(?m)^\s*(strict\s+)?(di)?graph\b`)

// Parse reads DOT source and returns a [graph.Graph] over the node names
// in the first graph it declares. A node's label attribute becomes its
// rendered label; nodes with no label attribute render with an empty
// label. If the source declares more than one graph, only the first is
// used and an OnAmbiguousInput event is sent to the [observability.Ingest]
// hooks.
func Parse(ctx context.Context, data []byte) (*graph.Graph[string], error) {
	observability.Ingest().OnIngestStart(ctx, "dot")

	if n := len(topLevelGraphRe.FindAll(data, -1)); n > 1 {
		observability.Ingest().OnAmbiguousInput(ctx, "dot",
			fmt.Sprintf("source declares %d graphs, rendering only the first", n))
	}

	g, err := graphviz.ParseBytes(data)
	if err != nil {
		observability.Ingest().OnIngestComplete(ctx, "dot", 0, 0, err)
		return nil, fmt.Errorf("ingest/dot: parse: %w", err)
	}
	defer g.Close()

	out := walk(g)
	observability.Ingest().OnIngestComplete(ctx, "dot", out.Len(), 0, nil)
	return out, nil
}

func walk(g *cgraph.Graph) *graph.Graph[string] {
	labels := make(map[string]string)
	edges := make(map[string][]string)

	for n := g.FirstNode(); n != nil; n = g.NextNode(n) {
		name := n.Name()
		labels[name] = n.Get("label")
	}

	for n := g.FirstNode(); n != nil; n = g.NextNode(n) {
		tail := n.Name()
		for e := g.FirstOut(n); e != nil; e = g.NextOut(e) {
			head := e.Head().Name()
			edges[tail] = append(edges[tail], head)
		}
	}

	return graph.New(labels, edges)
}

// RenderReader parses DOT source from r and renders it with opts.
func RenderReader(ctx context.Context, r io.Reader, opts printer.Options) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("ingest/dot: read: %w", err)
	}
	g, err := Parse(ctx, data)
	if err != nil {
		return "", err
	}
	return render.RenderContext(ctx, g, opts)
}

// RenderFile reads and renders the DOT file at path.
func RenderFile(ctx context.Context, path string, opts printer.Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("ingest/dot: read %s: %w", path, err)
	}
	return RenderReader(ctx, bytes.NewReader(data), opts)
}
