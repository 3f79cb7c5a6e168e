// Package printer turns a canvas of symbol rows into the final text output,
// appending each row's node labels after the diagram and optionally
// grouping labels that share a common prefix or suffix.
//
// # Spacing
//
// [Options.Spacing] controls how the label column lines up: [Fixed] always
// inserts the same number of spaces, [Justified] pads every row to a fixed
// column, and [AutoJustified] (the default) pads every row to the width of
// the widest row in the whole canvas so labels line up regardless of how
// wide any single row's diagram is.
//
// # Grouping
//
// When two or more labels on the same row share a long enough common
// prefix or suffix, they are printed as "prefix{a,b}" or "{a,b}suffix"
// instead of a plain comma list. An empty label (a node with no name)
// prints as "?".
package printer
