package canvas

import (
	"cmp"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/layout"
)

// Row is one printable line of the canvas: a dense slice of symbols, one
// per column, with no gaps.
type Row []Symbol

// Draw renders every height's cursors into rows, from the top of the graph
// down. Each height contributes one node row followed by the path rows
// connecting it to the height below; the final row is always a padding
// [Hold] row produced by the bottom height's self-referencing cursors and
// is dropped.
func Draw[N cmp.Ordered](g *graph.Graph[N], cursorsByHeight map[int]*layout.Cursors[N]) []Row {
	maxHeight := 0
	for h := range cursorsByHeight {
		if h > maxHeight {
			maxHeight = h
		}
	}

	var rows []Row
	for height := maxHeight; height >= 0; height-- {
		cursors, ok := cursorsByHeight[height]
		if !ok {
			continue
		}
		rows = append(rows, drawCursorsRow(g, cursors))
		rows = append(rows, drawPaths(allCursors(cursors))...)
	}

	if len(rows) > 0 {
		rows = rows[:len(rows)-1]
	}
	return rows
}

func allCursors[N cmp.Ordered](c *layout.Cursors[N]) []layout.Cursor[N] {
	out := make([]layout.Cursor[N], 0, len(c.Nodes)+len(c.Paths))
	out = append(out, c.Nodes...)
	out = append(out, c.Paths...)
	return out
}

// drawCursorsRow renders the node row for a single height: [Node] symbols
// at every node cursor's column, [Hold] symbols at every pass-by cursor's
// column, [Space] everywhere else. Node and pass-by cursors never share a
// column (they occupy disjoint ranges by construction), so overlay order
// between the two groups is immaterial.
func drawCursorsRow[N cmp.Ordered](g *graph.Graph[N], cursors *layout.Cursors[N]) Row {
	symbols := make(map[int]Symbol, len(cursors.Nodes)+len(cursors.Paths))
	maxCol := 0
	for _, c := range cursors.Nodes {
		symbols[c.Current] = NewNode(g.Label(c.Node))
		if c.Current > maxCol {
			maxCol = c.Current
		}
	}
	for _, c := range cursors.Paths {
		symbols[c.Current] = NewSymbol(Hold)
		if c.Current > maxCol {
			maxCol = c.Current
		}
	}

	row := make(Row, maxCol+1)
	for i := range row {
		if s, ok := symbols[i]; ok {
			row[i] = s
		} else {
			row[i] = NewSymbol(Space)
		}
	}
	return row
}

// drawPaths renders the connector rows between a height and the one below
// it, resolving any symbols that land on the same column within a row.
func drawPaths[N cmp.Ordered](cursors []layout.Cursor[N]) []Row {
	sparse := buildRows(cursors)

	rows := make([]Row, len(sparse))
	for i, symbols := range sparse {
		merged := mergeSymbols(symbols)
		maxCol := 0
		for pos := range merged {
			if pos > maxCol {
				maxCol = pos
			}
		}
		row := make(Row, maxCol+1)
		for col := range row {
			if s, ok := merged[col]; ok {
				row[col] = s
			} else {
				row[col] = NewSymbol(Space)
			}
		}
		rows[i] = row
	}
	return rows
}

// mergeSymbols groups symbols by column, preserving the order columns were
// first seen, and folds each group left-to-right through resolveConflict.
func mergeSymbols(symbols []symbolAt) map[int]Symbol {
	order := make([]int, 0)
	groups := make(map[int][]Symbol)
	for _, s := range symbols {
		if _, ok := groups[s.pos]; !ok {
			order = append(order, s.pos)
		}
		groups[s.pos] = append(groups[s.pos], s.symbol)
	}

	merged := make(map[int]Symbol, len(order))
	for _, pos := range order {
		group := groups[pos]
		acc := group[0]
		for _, next := range group[1:] {
			acc = resolveConflict(acc, next)
		}
		merged[pos] = acc
	}
	return merged
}

// resolveConflict reduces two symbols claiming the same column to one,
// following a fixed priority: a node always wins, a space always loses,
// and two opposing diagonals cross. Two symbols of the same direction (two
// [Left] or two [Right]) have no sharper resolution than "keep the first
// one encountered" — this only happens when a column is genuinely
// ambiguous, and any deterministic choice is as good as another.
func resolveConflict(a, b Symbol) Symbol {
	switch {
	case a.IsNode():
		return a
	case b.IsNode():
		return b
	case b.IsSpace():
		return a
	case a.IsSpace():
		return b
	case a.IsLeft() && b.IsRight(), a.IsRight() && b.IsLeft():
		return NewSymbol(Cross)
	case a.IsCross() && (b.IsLeft() || b.IsRight()):
		return NewSymbol(Cross)
	case b.IsCross() && (a.IsLeft() || a.IsRight()):
		return NewSymbol(Cross)
	default:
		return a
	}
}
