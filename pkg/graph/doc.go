// Package graph provides the directed acyclic graph model that feeds the
// ASCII rendering pipeline.
//
// # Overview
//
// A [Graph] is a pair of mappings: node identifiers to labels, and node
// identifiers to their set of direct successors. Unlike stacktower's
// row-based dag.DAG, this graph never stores a layer assignment — the
// rendering pipeline derives each node's vertical position itself, from
// [Graph.HeightGroups].
//
// # Height
//
// A node's height is the length of the longest directed path starting at
// that node; sinks (no outgoing edges) have height 0. Height is computed
// once, memoized, and is stable under any permutation of the input maps.
//
// # Ordering
//
// [Graph.HeightGroups] groups nodes by height and sorts each group by
// descending combined height (forward height plus the height of the same
// node in the edge-reversed graph), breaking ties on label. This pulls
// nodes with both long descendant and ancestor chains toward the left of
// the diagram, and is the sole source of horizontal placement used by the
// rest of the pipeline.
//
// # Concurrency
//
// Graph is built once and treated as immutable by the renderer; it is safe
// for concurrent reads (including concurrent calls to [Graph.Height] and
// [Graph.HeightGroups]) but must not be constructed concurrently with reads.
package graph
