// Package jsongraph ingests a simple JSON node-link graph into a
// [graph.Graph]: node IDs, optional labels, and edges.
package jsongraph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/observability"
	"github.com/asciidag/asciidag/pkg/printer"
	"github.com/asciidag/asciidag/pkg/render"
)

// Document is the JSON shape this package reads and writes:
//
//	{
//	  "nodes": [{"id": "a", "label": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// A node's label defaults to its id if omitted.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one entry in a [Document]'s "nodes" array.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Edge is one entry in a [Document]'s "edges" array.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Build converts a Document into a [graph.Graph] keyed by node ID.
func Build(doc Document) *graph.Graph[string] {
	labels := make(map[string]string, len(doc.Nodes))
	for _, n := range doc.Nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		labels[n.ID] = label
	}

	edges := make(map[string][]string, len(doc.Edges))
	for _, e := range doc.Edges {
		edges[e.From] = append(edges[e.From], e.To)
	}

	return graph.New(labels, edges)
}

// Parse decodes JSON from r into a [graph.Graph].
func Parse(ctx context.Context, r io.Reader) (*graph.Graph[string], error) {
	observability.Ingest().OnIngestStart(ctx, "json")
	start := time.Now()

	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		err = fmt.Errorf("ingest/jsongraph: decode: %w", err)
		observability.Ingest().OnIngestComplete(ctx, "json", 0, time.Since(start), err)
		return nil, err
	}

	g := Build(doc)
	observability.Ingest().OnIngestComplete(ctx, "json", g.Len(), time.Since(start), nil)
	return g, nil
}

// Write encodes g as a [Document] and writes it to w, so a graph ingested
// from DOT or an ML graph def can be round-tripped through this package's
// format.
func Write(g *graph.Graph[string], w io.Writer) error {
	doc := Document{}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, Node{ID: n, Label: g.Label(n)})
	}
	for _, n := range g.Nodes() {
		for _, m := range g.Neighbors(n) {
			doc.Edges = append(doc.Edges, Edge{From: n, To: m})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// RenderReader parses a JSON graph from r and renders it with opts.
func RenderReader(ctx context.Context, r io.Reader, opts printer.Options) (string, error) {
	g, err := Parse(ctx, r)
	if err != nil {
		return "", err
	}
	return render.RenderContext(ctx, g, opts)
}

// RenderFile reads and renders the JSON graph file at path.
func RenderFile(ctx context.Context, path string, opts printer.Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("ingest/jsongraph: open %s: %w", path, err)
	}
	defer f.Close()
	return RenderReader(ctx, f, opts)
}
