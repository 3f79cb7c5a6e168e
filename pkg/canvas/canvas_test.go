package canvas

import (
	"testing"

	"github.com/asciidag/asciidag/pkg/graph"
	"github.com/asciidag/asciidag/pkg/layout"
)

func cursor(node, current, target int) layout.Cursor[int] {
	return layout.Cursor[int]{Node: node, Current: current, Target: target}
}

func TestBuildRowsSingleRight(t *testing.T) {
	rows := buildRows([]layout.Cursor[int]{cursor(0, 0, 4)})
	want := [][]symbolAt{
		{{1, NewSymbol(Right)}},
		{{3, NewSymbol(Right)}},
	}
	assertRowsEqual(t, rows, want)
}

func TestBuildRowsSingleLeftWithMoves(t *testing.T) {
	rows := buildRows([]layout.Cursor[int]{cursor(0, 4, 0)})
	want := [][]symbolAt{
		{{1, NewSymbol(LeftMove)}, {2, NewSymbol(LeftMove)}, {3, NewSymbol(Left)}},
	}
	assertRowsEqual(t, rows, want)
}

func TestBuildRowsSingleLeft(t *testing.T) {
	rows := buildRows([]layout.Cursor[int]{cursor(0, 2, 0)})
	want := [][]symbolAt{
		{{1, NewSymbol(Left)}},
	}
	assertRowsEqual(t, rows, want)
}

func TestBuildRowsCrossingWithoutCrossSymbol(t *testing.T) {
	rows := buildRows([]layout.Cursor[int]{cursor(0, 0, 4), cursor(0, 4, 0)})
	want := [][]symbolAt{
		{{1, NewSymbol(Right)}, {3, NewSymbol(Left)}},
		{{1, NewSymbol(Left)}, {3, NewSymbol(Right)}},
	}
	assertRowsEqual(t, rows, want)
}

func TestBuildRowsCrossingWithCrossSymbol(t *testing.T) {
	rows := buildRows([]layout.Cursor[int]{cursor(0, 0, 4), cursor(0, 2, 0)})
	want := [][]symbolAt{
		{{1, NewSymbol(Right)}, {1, NewSymbol(Left)}},
		{{0, NewSymbol(Hold)}, {3, NewSymbol(Right)}},
	}
	assertRowsEqual(t, rows, want)
}

func assertRowsEqual(t *testing.T, got, want [][]symbolAt) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if !sameSymbolSet(got[i], want[i]) {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMoveLeftFillsGapWithOneMove(t *testing.T) {
	steps := []step[int]{
		{cursor: cursor(0, 0, 0), symbols: []symbolAt{{0, NewSymbol(Hold)}}},
		{cursor: cursor(1, 0, 0), symbols: []symbolAt{{1, NewSymbol(Left)}}},
		{cursor: cursor(2, 2, 0), symbols: []symbolAt{{3, NewSymbol(Left)}}},
	}
	got := relaxLeft(steps)
	want := []step[int]{
		{cursor: cursor(0, 0, 0), symbols: []symbolAt{{0, NewSymbol(Hold)}}},
		{cursor: cursor(1, 0, 0), symbols: []symbolAt{{1, NewSymbol(Left)}}},
		{cursor: cursor(2, 0, 0), symbols: []symbolAt{{2, NewSymbol(LeftMove)}, {3, NewSymbol(Left)}}},
	}
	if !stepsEqual(got, want) {
		t.Errorf("relaxLeft() = %+v, want %+v", got, want)
	}
}

func TestMoveLeftMergesWithExistingSlide(t *testing.T) {
	steps := []step[int]{
		{cursor: cursor(0, 0, 0), symbols: []symbolAt{{0, NewSymbol(Hold)}}},
		{cursor: cursor(1, 0, 0), symbols: []symbolAt{{1, NewSymbol(Left)}}},
		{cursor: cursor(2, 0, 0), symbols: []symbolAt{{2, NewSymbol(LeftMove)}, {3, NewSymbol(Left)}}},
		{cursor: cursor(3, 2, 0), symbols: []symbolAt{{4, NewSymbol(LeftMove)}, {5, NewSymbol(Left)}}},
	}
	got := relaxLeft(steps)
	want := []step[int]{
		{cursor: cursor(0, 0, 0), symbols: []symbolAt{{0, NewSymbol(Hold)}}},
		{cursor: cursor(1, 0, 0), symbols: []symbolAt{{1, NewSymbol(Left)}}},
		{cursor: cursor(2, 0, 0), symbols: []symbolAt{{2, NewSymbol(LeftMove)}, {3, NewSymbol(Left)}}},
		{cursor: cursor(3, 0, 0), symbols: []symbolAt{{4, NewSymbol(LeftMove)}, {5, NewSymbol(Left)}}},
	}
	if !stepsEqual(got, want) {
		t.Errorf("relaxLeft() = %+v, want %+v", got, want)
	}
}

func TestMoveLeftAloneSlidesWithMoves(t *testing.T) {
	steps := []step[int]{
		{cursor: cursor(0, 2, 0), symbols: []symbolAt{{3, NewSymbol(Left)}}},
	}
	got := relaxLeft(steps)
	want := []step[int]{
		{cursor: cursor(0, 0, 0), symbols: []symbolAt{
			{1, NewSymbol(LeftMove)}, {2, NewSymbol(LeftMove)}, {3, NewSymbol(Left)},
		}},
	}
	if !stepsEqual(got, want) {
		t.Errorf("relaxLeft() = %+v, want %+v", got, want)
	}
}

func rowString(row Row) string {
	b := make([]byte, len(row))
	for i, s := range row {
		b[i] = s.Char()
	}
	return string(b)
}

func TestDrawDiamond(t *testing.T) {
	g := graph.New(map[int]string{}, map[int][]int{0: {1, 2}, 1: {2}})
	plan := layoutBuildPlan(g)
	cursors := layoutBuildCursors(g, plan)

	rows := Draw(g, cursors)
	want := []string{"o", "|\\", "o |", "|/", "o"}
	if len(rows) != len(want) {
		t.Fatalf("row count = %d, want %d", len(rows), len(want))
	}
	for i, line := range want {
		if got := rowString(rows[i]); got != line {
			t.Errorf("row %d = %q, want %q", i, got, line)
		}
	}
}

func TestDrawSampleGraph(t *testing.T) {
	labels := map[int]string{0: "L0", 1: "L1", 2: "L2", 3: "L3", 4: "L4", 5: "L5", 6: "L6", 7: "L7"}
	g := graph.New(labels, map[int][]int{0: {2}, 1: {2}, 2: {3}, 3: {5}, 4: {3}, 6: {3}, 7: {3}})
	plan := layoutBuildPlan(g)
	cursors := layoutBuildCursors(g, plan)

	rows := Draw(g, cursors)
	want := []string{
		"o o",
		"|/",
		"o o o o",
		"|/_/_/",
		"o",
		"|",
		"o",
	}
	if len(rows) != len(want) {
		t.Fatalf("row count = %d, want %d:\n%v", len(rows), len(want), rows)
	}
	for i, line := range want {
		if got := rowString(rows[i]); got != line {
			t.Errorf("row %d = %q, want %q", i, got, line)
		}
	}
	if rows[0][0].Label != "L0" || rows[0][2].Label != "L1" {
		t.Errorf("row 0 labels = %q/%q, want L0/L1", rows[0][0].Label, rows[0][2].Label)
	}
}

func layoutBuildPlan(g *graph.Graph[int]) map[int]*layout.Plan[int] {
	return layout.BuildPlan(g)
}

func layoutBuildCursors(g *graph.Graph[int], plan map[int]*layout.Plan[int]) map[int]*layout.Cursors[int] {
	return layout.BuildCursors(g, plan)
}
