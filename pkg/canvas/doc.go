// Package canvas turns layout cursors into rows of [Symbol] — the last
// stage before text is printed.
//
// # Node rows and path rows
//
// Every height produces one node row (the nodes or pass-by holds living at
// that height) followed by zero or more path rows: the diagonal or
// straight segments connecting this height's cursors to the next height
// down. Path rows are produced by a relaxation loop, not computed in
// closed form, because a cursor sliding left may need to detour around
// another cursor already occupying its path — see [Draw].
//
// # Conflicts
//
// Two cursors can legitimately claim the same column in the same row (a
// crossing, or a node sitting where a hold was about to land). Overlapping
// symbols are merged through a fixed priority order: a node always wins, a
// space always loses, and two opposing diagonals resolve to a crossing.
package canvas
