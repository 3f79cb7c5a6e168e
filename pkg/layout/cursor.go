package layout

import (
	"cmp"

	"github.com/asciidag/asciidag/pkg/graph"
)

// Cursor tracks a single path segment crossing from one height to the
// height directly below it: Node is the path's node of origin, Current is
// its column at the top of the gap, and Target is the column it must reach
// at the bottom.
type Cursor[N cmp.Ordered] struct {
	Node    N
	Current int
	Target  int
}

// Cursors splits the cursors crossing a height gap into those that
// terminate in (or originate from) a node defined at this height, and
// those that belong to a path merely passing by.
type Cursors[N cmp.Ordered] struct {
	Nodes []Cursor[N]
	Paths []Cursor[N]
}

// BuildCursors computes the [Cursors] for every height in plans, given the
// graph used to produce those plans. The bottom-most height (with no level
// below it) gets trivial cursors: each defined or passing-by node simply
// occupies its own column, with current and target equal.
func BuildCursors[N cmp.Ordered](g *graph.Graph[N], plans map[int]*Plan[N]) map[int]*Cursors[N] {
	maxHeight := 0
	for h := range plans {
		if h > maxHeight {
			maxHeight = h
		}
	}

	tracking := make(map[int]*Cursors[N], len(plans))
	for height := maxHeight; height >= 0; height-- {
		curr, hasCurr := plans[height]
		if !hasCurr {
			// No node reaches exactly this height (a disconnected
			// component leaves a gap). Nothing to do for it.
			continue
		}
		next, hasNext := plans[height-1]
		if hasNext {
			tracking[height] = makeCursor(g, curr, next)
			continue
		}

		nodes := make([]Cursor[N], len(curr.Defined))
		for i, node := range curr.Defined {
			nodes[i] = Cursor[N]{Node: node, Current: i * 2, Target: i * 2}
		}
		n := len(curr.Defined)
		var paths []Cursor[N]
		for i, node := range curr.PassingBy {
			col := (n + i) * 2
			paths = append(paths, Cursor[N]{Node: node, Current: col, Target: col})
		}
		tracking[height] = &Cursors[N]{Nodes: nodes, Paths: paths}
	}

	return tracking
}

// makeCursor computes the four groups of cursors crossing the gap between
// curr and next, and merges them into the Nodes/Paths split the canvas
// drawer expects: Nodes holds everything originating at a node defined in
// curr (whether its destination is a node or a pass-by slot), Paths holds
// everything originating at a pass-by slot in curr.
func makeCursor[N cmp.Ordered](g *graph.Graph[N], curr, next *Plan[N]) *Cursors[N] {
	// Paths from nodes defined in curr that reach another node in next.
	var nodeToNode []Cursor[N]
	for i, node := range curr.Defined {
		for _, neighbor := range g.Neighbors(node) {
			for j, nextNode := range next.Defined {
				if neighbor == nextNode {
					nodeToNode = append(nodeToNode, Cursor[N]{Node: node, Current: i * 2, Target: j * 2})
					break
				}
			}
		}
	}

	// Paths from nodes defined in curr that will be bypassing next. A
	// pass-by slot in next occupies the column just past next's defined
	// nodes, so its column is (len(next.Defined)+k)*2 for its position k
	// within next.PassingBy — the same offset passby-to-passby cursors use.
	var nodeToPassby []Cursor[N]
	nextBase := len(next.Defined)
	for i, node := range curr.Defined {
		for k, passbyNode := range next.PassingBy {
			if node == passbyNode {
				nodeToPassby = append(nodeToPassby, Cursor[N]{Node: node, Current: i * 2, Target: (nextBase + k) * 2})
				break
			}
		}
	}

	// Paths bypassing curr that reach a destination node in next.
	var passbyToNode []Cursor[N]
	base := len(curr.Defined)
	for i, node := range curr.PassingBy {
		for _, neighbor := range g.Neighbors(node) {
			for j, nextNode := range next.Defined {
				if neighbor == nextNode {
					passbyToNode = append(passbyToNode, Cursor[N]{Node: node, Current: (base + i) * 2, Target: j * 2})
					break
				}
			}
		}
	}

	// Paths bypassing curr that will continue bypassing next.
	var passbyToPassby []Cursor[N]
	for i, node := range curr.PassingBy {
		for k, passbyNode := range next.PassingBy {
			if node == passbyNode {
				passbyToPassby = append(passbyToPassby, Cursor[N]{Node: node, Current: (base + i) * 2, Target: (nextBase + k) * 2})
				break
			}
		}
	}

	return &Cursors[N]{
		Nodes: append(nodeToNode, nodeToPassby...),
		Paths: append(passbyToNode, passbyToPassby...),
	}
}
