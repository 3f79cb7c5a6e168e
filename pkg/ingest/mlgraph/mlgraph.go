// Package mlgraph ingests machine-learning computation graphs into a
// [graph.Graph]. Its input shape mirrors TensorFlow's GraphDef: a flat
// list of nodes, each naming the outputs of other nodes as its inputs.
package mlgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/observability"
	"github.com/asciidag/asciidag/pkg/printer"
	"github.com/asciidag/asciidag/pkg/render"
)

// NodeDef is a single computation node: its name, and the names of the
// nodes whose output it consumes. An input may reference a specific
// output slot as "name:slot" (only the name before the colon matters for
// rendering) or be a control dependency, written with a leading "^".
type NodeDef struct {
	Name  string   `json:"name"`
	Input []string `json:"input,omitempty"`
}

// GraphDef is a flat computation graph, as produced by
// tf.Graph.as_graph_def() or an equivalent ML framework export.
type GraphDef struct {
	Nodes []NodeDef `json:"nodes"`
}

// Build converts a GraphDef into a [graph.Graph] keyed by node name. Every
// node's label is its own name; an edge runs from each input to the node
// that consumes it.
func Build(def GraphDef) *graph.Graph[string] {
	labels := make(map[string]string, len(def.Nodes))
	edges := make(map[string][]string, len(def.Nodes))

	for _, n := range def.Nodes {
		labels[n.Name] = n.Name
		for _, input := range n.Input {
			source := inputNodeName(input)
			edges[source] = append(edges[source], n.Name)
		}
	}

	return graph.New(labels, edges)
}

// inputNodeName strips an output-slot suffix ("name:1" -> "name") and a
// leading control-dependency marker ("^name" -> "name") from an input
// reference, leaving the producing node's name.
func inputNodeName(input string) string {
	input = strings.TrimPrefix(input, "^")
	if i := strings.IndexByte(input, ':'); i >= 0 {
		input = input[:i]
	}
	return input
}

// Render builds def into a graph and renders it with opts.
func Render(ctx context.Context, def GraphDef, opts printer.Options) (string, error) {
	observability.Ingest().OnIngestStart(ctx, "mlgraph")
	start := time.Now()

	g := Build(def)

	observability.Ingest().OnIngestComplete(ctx, "mlgraph", g.Len(), time.Since(start), nil)
	return render.RenderContext(ctx, g, opts)
}

// Parse decodes a JSON-encoded GraphDef from r into a [graph.Graph], for
// callers that receive a TensorFlow-style graph def over a wire format
// rather than constructing one in-process.
func Parse(ctx context.Context, r io.Reader) (*graph.Graph[string], error) {
	observability.Ingest().OnIngestStart(ctx, "mlgraph")
	start := time.Now()

	var def GraphDef
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		err = fmt.Errorf("ingest/mlgraph: decode: %w", err)
		observability.Ingest().OnIngestComplete(ctx, "mlgraph", 0, time.Since(start), err)
		return nil, err
	}

	g := Build(def)
	observability.Ingest().OnIngestComplete(ctx, "mlgraph", g.Len(), time.Since(start), nil)
	return g, nil
}
