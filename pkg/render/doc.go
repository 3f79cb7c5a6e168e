// Package render wires the graph, layout, canvas, and printer stages into
// a single call, and reports progress through the observability hooks.
package render
