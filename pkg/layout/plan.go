package layout

import (
	"cmp"

	"github.com/asciidag/asciidag/pkg/graph"
)

// Plan describes what happens at a single height of the graph: which nodes
// are defined there, and which paths merely pass by on their way further
// down.
type Plan[N cmp.Ordered] struct {
	// Defined lists the nodes that live at this height, in the order
	// produced by the graph's height groups.
	Defined []N

	// PassingBy lists, for each path that crosses this height without
	// stopping, the node the path originates from. A node appears at
	// most once, however many of its edges pass by this height.
	PassingBy []N
}

// BuildPlan computes a [Plan] for every height present in g, working from
// the top of the graph down. A node passes by height h if one of its
// outgoing paths (direct or already-passing-by) reaches past h without a
// stop at h.
func BuildPlan[N cmp.Ordered](g *graph.Graph[N]) map[int]*Plan[N] {
	groups := g.HeightGroups()

	tracking := make(map[int]*Plan[N], len(groups))
	maxHeight := 0
	for h, nodes := range groups {
		if h > maxHeight {
			maxHeight = h
		}
		tracking[h] = &Plan[N]{Defined: nodes}
	}

	for height := maxHeight; height >= 2; height-- {
		computePassingBy(g, height, tracking)
	}

	return tracking
}

func computePassingBy[N cmp.Ordered](g *graph.Graph[N], height int, tracking map[int]*Plan[N]) {
	curr, ok := tracking[height]
	if !ok {
		return
	}
	next, ok := tracking[height-1]
	if !ok {
		return
	}

	nextDefined := make(map[N]struct{}, len(next.Defined))
	for _, n := range next.Defined {
		nextDefined[n] = struct{}{}
	}

	passesBy := func(node N) bool {
		for _, neighbor := range g.Neighbors(node) {
			if _, defined := nextDefined[neighbor]; g.Height(neighbor) < height && !defined {
				return true
			}
		}
		return false
	}

	for _, node := range curr.Defined {
		if passesBy(node) {
			next.PassingBy = append(next.PassingBy, node)
		}
	}
	for _, node := range curr.PassingBy {
		if passesBy(node) {
			next.PassingBy = append(next.PassingBy, node)
		}
	}
}
