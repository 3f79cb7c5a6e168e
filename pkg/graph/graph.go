package graph

import (
	"cmp"
	"errors"
	"sort"
	"sync"
)

// ErrCyclicInput is returned by [Graph.Validate] when the edge relation
// contains a cycle. The rendering pipeline assumes an acyclic graph; height
// computation on cyclic input is undefined, so callers should validate
// before rendering.
var ErrCyclicInput = errors.New("graph: cyclic input")

// Graph is a directed graph of nodes identified by N, used exclusively for
// ASCII rendering. N must be comparable and totally ordered; ordering is
// used only as a deterministic tie-breaker (see [Graph.HeightGroups]).
//
// The zero value is not usable; construct with [New].
type Graph[N cmp.Ordered] struct {
	labels map[N]string
	edges  map[N][]N // neighbors, deduplicated and sorted ascending

	heightsOnce sync.Once
	heights     map[N]int
}

// New creates a Graph from a label mapping and an edge mapping (node to the
// set of its direct successors, expressed as a slice).
//
// Any node referenced as an edge endpoint but absent from labels is
// auto-registered with an empty label string, a concession for ingestion
// adapters that emit edges before nodes. Neighbor lists are deduplicated
// and sorted by N's natural order so that
// iteration over a node's neighbors is deterministic regardless of the
// order the caller built the edges map in.
func New[N cmp.Ordered](labels map[N]string, edges map[N][]N) *Graph[N] {
	lbl := make(map[N]string, len(labels))
	for k, v := range labels {
		lbl[k] = v
	}

	ed := make(map[N][]N, len(edges))
	for src, neighbors := range edges {
		if _, ok := lbl[src]; !ok {
			lbl[src] = ""
		}
		seen := make(map[N]struct{}, len(neighbors))
		for _, dst := range neighbors {
			if _, ok := lbl[dst]; !ok {
				lbl[dst] = ""
			}
			seen[dst] = struct{}{}
		}
		deduped := make([]N, 0, len(seen))
		for dst := range seen {
			deduped = append(deduped, dst)
		}
		sort.Slice(deduped, func(i, j int) bool { return deduped[i] < deduped[j] })
		ed[src] = deduped
	}

	return &Graph[N]{labels: lbl, edges: ed}
}

// Len returns the number of nodes in the graph.
func (g *Graph[N]) Len() int { return len(g.labels) }

// Label returns the label of node n, or the empty string if n is unknown.
func (g *Graph[N]) Label(n N) string { return g.labels[n] }

// Neighbors returns the direct successors of n in ascending order. The
// returned slice must not be modified.
func (g *Graph[N]) Neighbors(n N) []N { return g.edges[n] }

// Nodes returns all node identifiers in ascending order.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, 0, len(g.labels))
	for n := range g.labels {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// Reverse returns a new graph over the same nodes with every edge direction
// flipped. The label table is shared with g, not copied; neither graph
// modifies it after construction.
func (g *Graph[N]) Reverse() *Graph[N] {
	tmp := make(map[N]map[N]struct{}, len(g.edges))
	for src, neighbors := range g.edges {
		for _, dst := range neighbors {
			if tmp[dst] == nil {
				tmp[dst] = make(map[N]struct{})
			}
			tmp[dst][src] = struct{}{}
		}
	}

	reversed := make(map[N][]N, len(tmp))
	for n, set := range tmp {
		lst := make([]N, 0, len(set))
		for m := range set {
			lst = append(lst, m)
		}
		sort.Slice(lst, func(i, j int) bool { return lst[i] < lst[j] })
		reversed[n] = lst
	}

	return &Graph[N]{labels: g.labels, edges: reversed}
}

// Height returns the length of the longest directed path starting at n.
// Leaves (no outgoing edges) have height 0. Unknown nodes return 0.
//
// Height is computed once for the whole graph on first call and memoized;
// subsequent calls (on this graph or [Graph.HeightGroups]) are O(1).
func (g *Graph[N]) Height(n N) int {
	g.ensureHeights()
	return g.heights[n]
}

// HeightGroups groups nodes by [Graph.Height] and sorts each group by
// descending combined height (this graph's height plus the same node's
// height in the edge-reversed graph), breaking ties by label and finally by
// the node's natural order. This ordering is the sole source of horizontal
// placement used by the rest of the rendering pipeline; it must reproduce
// identically for any two graphs that are equal as (labels, edges) sets.
func (g *Graph[N]) HeightGroups() map[int][]N {
	g.ensureHeights()
	reverse := g.Reverse()
	reverseHeights := reverse.allHeights()

	groups := make(map[int][]N)
	for n := range g.labels {
		h := g.heights[n]
		groups[h] = append(groups[h], n)
	}

	score := func(n N) int { return g.heights[n] + reverseHeights[n] }
	for h := range groups {
		nodes := groups[h]
		sort.Slice(nodes, func(i, j int) bool {
			ni, nj := nodes[i], nodes[j]
			if si, sj := score(ni), score(nj); si != sj {
				return si > sj
			}
			if li, lj := g.labels[ni], g.labels[nj]; li != lj {
				return li < lj
			}
			return ni < nj
		})
	}
	return groups
}

// Validate reports whether the edge relation is acyclic. Rendering assumes
// an acyclic graph; callers should call Validate before [Graph.Height] or
// [Graph.HeightGroups] if the input's acyclicity is not already guaranteed.
//
// Cycle detection runs in O(V+E) using iterative depth-first search with
// white/gray/black coloring (an explicit stack is used instead of
// recursion so that large graphs cannot overflow the call stack).
func (g *Graph[N]) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[N]int, len(g.labels))
	progress := make(map[N]int, len(g.labels))

	for _, start := range g.Nodes() {
		if color[start] != white {
			continue
		}

		stack := []N{start}
		color[start] = gray

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			neighbors := g.edges[n]
			i := progress[n]
			if i < len(neighbors) {
				progress[n] = i + 1
				m := neighbors[i]
				switch color[m] {
				case white:
					color[m] = gray
					stack = append(stack, m)
				case gray:
					return ErrCyclicInput
				}
				continue
			}
			color[n] = black
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

func (g *Graph[N]) ensureHeights() {
	g.heightsOnce.Do(func() {
		g.heights = g.allHeights()
	})
}

// allHeights computes the height of every node via an explicit post-order
// traversal (iterative, not recursive — see design notes on avoiding deep
// recursion for large graphs). A node's height is finalized only after all
// of its neighbors have been finalized, which post-order guarantees.
func (g *Graph[N]) allHeights() map[N]int {
	const (
		white = iota
		gray
		black
	)

	heights := make(map[N]int, len(g.labels))
	color := make(map[N]int, len(g.labels))
	progress := make(map[N]int, len(g.labels))

	for _, start := range g.Nodes() {
		if color[start] != white {
			continue
		}

		stack := []N{start}
		color[start] = gray

		for len(stack) > 0 {
			n := stack[len(stack)-1]
			neighbors := g.edges[n]
			i := progress[n]
			if i < len(neighbors) {
				progress[n] = i + 1
				m := neighbors[i]
				if color[m] == white {
					color[m] = gray
					stack = append(stack, m)
				}
				continue
			}

			h := 0
			for _, m := range neighbors {
				if heights[m]+1 > h {
					h = heights[m] + 1
				}
			}
			heights[n] = h
			color[n] = black
			stack = stack[:len(stack)-1]
		}
	}
	return heights
}
