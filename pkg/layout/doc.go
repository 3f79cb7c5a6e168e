// Package layout turns a graph's height groups into per-row cursor
// positions: the horizontal plan the canvas drawer paints paths from.
//
// # Plan
//
// At every height, some nodes are "defined" (they live at that height) and
// others merely "pass by" (a path between two nodes more than one level
// apart crosses this height without stopping). [BuildPlan] computes, for
// every height from the top down to the bottom, which nodes pass by —
// a node passes by height h-1 if one of its neighbors is strictly below
// height h-1 and not itself defined at h-1.
//
// # Cursors
//
// [BuildCursors] turns each adjacent pair of plans into four groups of
// column cursors (node-to-node, node-to-passby, passby-to-node,
// passby-to-passby), one per path segment that crosses the gap between two
// heights. Column indices double the node index (even columns hold nodes,
// odd columns hold diagonal path segments) — this leaves room for the
// canvas drawer to place a '/' or '\' between two adjacent node columns.
package layout
