package layout

import (
	"cmp"
	"reflect"
	"testing"

	"github.com/asciidag/asciidag/pkg/graph"
)

func plansEqual[N cmp.Ordered](t *testing.T, got, want map[int]*Plan[N]) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("plan height count = %d, want %d", len(got), len(want))
	}
	for h, wantPlan := range want {
		gotPlan, ok := got[h]
		if !ok {
			t.Fatalf("missing plan at height %d", h)
		}
		if !reflect.DeepEqual(gotPlan.Defined, wantPlan.Defined) {
			t.Errorf("height %d: Defined = %v, want %v", h, gotPlan.Defined, wantPlan.Defined)
		}
		if !reflect.DeepEqual(gotPlan.PassingBy, wantPlan.PassingBy) {
			t.Errorf("height %d: PassingBy = %v, want %v", h, gotPlan.PassingBy, wantPlan.PassingBy)
		}
	}
}

func cursorsEqual[N cmp.Ordered](t *testing.T, label string, got, want *Cursors[N]) {
	t.Helper()
	if !reflect.DeepEqual(got.Nodes, want.Nodes) {
		t.Errorf("%s: Nodes = %+v, want %+v", label, got.Nodes, want.Nodes)
	}
	if !reflect.DeepEqual(got.Paths, want.Paths) {
		t.Errorf("%s: Paths = %+v, want %+v", label, got.Paths, want.Paths)
	}
}

func TestBuildPlanDiamond(t *testing.T) {
	g := graph.New(map[int]string{}, map[int][]int{0: {1, 2}, 1: {2}})
	plan := BuildPlan(g)
	plansEqual[int](t, plan, map[int]*Plan[int]{
		2: {Defined: []int{0}, PassingBy: nil},
		1: {Defined: []int{1}, PassingBy: []int{0}},
		0: {Defined: []int{2}, PassingBy: nil},
	})

	cursors := BuildCursors(g, plan)
	cursorsEqual[int](t, "height 2", cursors[2], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 0, Current: 0, Target: 0}, {Node: 0, Current: 0, Target: 2}},
	})
	cursorsEqual[int](t, "height 1", cursors[1], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 1, Current: 0, Target: 0}},
		Paths: []Cursor[int]{{Node: 0, Current: 2, Target: 0}},
	})
	cursorsEqual[int](t, "height 0", cursors[0], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 2, Current: 0, Target: 0}},
	})
}

func TestBuildPlanLongChainBypass(t *testing.T) {
	g := graph.New(map[int]string{}, map[int][]int{0: {1, 3}, 1: {2}, 2: {3}})
	plan := BuildPlan(g)
	plansEqual[int](t, plan, map[int]*Plan[int]{
		3: {Defined: []int{0}},
		2: {Defined: []int{1}, PassingBy: []int{0}},
		1: {Defined: []int{2}, PassingBy: []int{0}},
		0: {Defined: []int{3}},
	})

	cursors := BuildCursors(g, plan)
	cursorsEqual[int](t, "height 2", cursors[2], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 1, Current: 0, Target: 0}},
		Paths: []Cursor[int]{{Node: 0, Current: 2, Target: 2}},
	})
	cursorsEqual[int](t, "height 1", cursors[1], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 2, Current: 0, Target: 0}},
		Paths: []Cursor[int]{{Node: 0, Current: 2, Target: 0}},
	})
}

// sampleGraph mirrors the fixture used across pkg/graph's tests.
func sampleGraph() *graph.Graph[int] {
	labels := make(map[int]string, 8)
	for i := 0; i < 8; i++ {
		labels[i] = "L"
	}
	return graph.New(labels, map[int][]int{
		0: {2}, 1: {2}, 2: {3}, 3: {5}, 4: {3}, 6: {3}, 7: {3},
	})
}

func TestBuildPlanSampleGraph(t *testing.T) {
	g := sampleGraph()
	plan := BuildPlan(g)
	plansEqual[int](t, plan, map[int]*Plan[int]{
		3: {Defined: []int{0, 1}},
		2: {Defined: []int{2, 4, 6, 7}},
		1: {Defined: []int{3}},
		0: {Defined: []int{5}},
	})

	cursors := BuildCursors(g, plan)
	cursorsEqual[int](t, "height 3", cursors[3], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 0, Current: 0, Target: 0}, {Node: 1, Current: 2, Target: 0}},
	})
	cursorsEqual[int](t, "height 2", cursors[2], &Cursors[int]{
		Nodes: []Cursor[int]{
			{Node: 2, Current: 0, Target: 0},
			{Node: 4, Current: 2, Target: 0},
			{Node: 6, Current: 4, Target: 0},
			{Node: 7, Current: 6, Target: 0},
		},
	})
	cursorsEqual[int](t, "height 1", cursors[1], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 3, Current: 0, Target: 0}},
	})
	cursorsEqual[int](t, "height 0", cursors[0], &Cursors[int]{
		Nodes: []Cursor[int]{{Node: 5, Current: 0, Target: 0}},
	})
}
