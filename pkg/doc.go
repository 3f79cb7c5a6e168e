// Package pkg provides the core libraries for asciidag, a renderer that
// turns directed acyclic graphs into ASCII-art diagrams in the style of
// `git log --graph`.
//
// # Overview
//
// asciidag takes a graph — however it was built — and produces a compact,
// terminal-friendly rendering of it: nodes as 'o', connecting edges as
// slashes, bars, and underscores, with labels trailing each row. The pkg
// directory is organized into the four stages of that pipeline plus the
// supporting ingestion, storage, and caching layers:
//
//  1. Graph Model ([graph])
//  2. Rendering Pipeline ([layout], [canvas], [printer], [render])
//  3. Ingestion ([ingest/dot], [ingest/jsongraph], [ingest/mlgraph])
//  4. Persistence & Caching ([store], [cache])
//
// # Architecture
//
// The typical data flow through asciidag:
//
//	DOT / JSON / ML graph def
//	         ↓
//	    [ingest/*] package (parse into a [graph.Graph])
//	         ↓
//	    [graph] package (heights, height groups, validation)
//	         ↓
//	    [layout] package (per-row node/pass-by planning)
//	         ↓
//	    [canvas] package (cursor relaxation, symbol drawing)
//	         ↓
//	    [printer] package (spacing, label formatting)
//	         ↓
//	    ASCII text
//
// [render] wires the graph → layout → canvas → printer stages into a single
// call.
//
// # Quick Start
//
//	import (
//	    "github.com/asciidag/asciidag/pkg/graph"
//	    "github.com/asciidag/asciidag/pkg/printer"
//	    "github.com/asciidag/asciidag/pkg/render"
//	)
//
//	g := graph.New(
//	    map[string]string{"a": "a", "b": "b", "c": "c"},
//	    map[string][]string{"a": {"c"}, "b": {"c"}},
//	)
//	out, err := render.Render(g, printer.DefaultOptions())
//
// # Main Packages
//
// ## Graph Model
//
// [graph] - A directed graph keyed by a generic, ordered node identifier.
// Computes node heights (longest path to a sink) and height groups (rows),
// and validates the input is acyclic before rendering.
//
// ## Rendering Pipeline
//
// [layout] - Plans, row by row, which nodes are newly defined at that row
// and which are merely passing through on their way to a row further down,
// plus the horizontal cursor movements needed to connect one row to the
// next.
//
// [canvas] - Draws cursor movements into a grid of symbols, relaxing paths
// leftward to keep the diagram as narrow as possible and resolving symbol
// conflicts where paths cross.
//
// [printer] - Converts a drawn canvas into text: spacing policy, and label
// grouping by shared prefix/suffix for rows with many similarly-named
// nodes.
//
// [render] - Orchestrates graph → layout → canvas → printer behind a
// single call, emitting [observability] events along the way.
//
// ## Ingestion
//
// [ingest/dot] - Parses Graphviz DOT source into a [graph.Graph].
//
// [ingest/jsongraph] - Parses a simple JSON node-link schema.
//
// [ingest/mlgraph] - Parses machine-learning graph definitions (nodes with
// named inputs, as used by TensorFlow-style graph defs).
//
// ## Persistence & Caching
//
// [store] - Persists rendered output for later retrieval by ID, backed by
// the filesystem or MongoDB.
//
// [cache] - Caches rendered output keyed by graph content hash, backed by
// the filesystem, Redis, or no-op.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/graph/...              # Specific package
//	go test -run Example ./...           # Examples only
//
// [graph]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/graph
// [layout]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/layout
// [canvas]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/canvas
// [printer]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/printer
// [render]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/render
// [ingest/dot]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/ingest/dot
// [ingest/jsongraph]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/ingest/jsongraph
// [ingest/mlgraph]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/ingest/mlgraph
// [store]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/store
// [cache]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/cache
// [observability]: https://pkg.go.dev/github.com/asciidag/asciidag/pkg/observability
package pkg
