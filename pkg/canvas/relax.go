package canvas

import (
	"cmp"

	"github.com/asciidag/asciidag/pkg/layout"
)

// symbolAt pairs a column with the symbol to place there.
type symbolAt struct {
	pos    int
	symbol Symbol
}

// step is an in-progress cursor advancing one row down, together with the
// symbols it deposited to get there.
type step[N cmp.Ordered] struct {
	cursor  layout.Cursor[N]
	symbols []symbolAt
}

func (s step[N]) movedBy(delta int) step[N] {
	c := s.cursor
	c.Current += delta
	return step[N]{cursor: c, symbols: s.symbols}
}

func (s step[N]) withSymbols(extra ...symbolAt) step[N] {
	symbols := make([]symbolAt, 0, len(s.symbols)+len(extra))
	symbols = append(symbols, s.symbols...)
	symbols = append(symbols, extra...)
	return step[N]{cursor: s.cursor, symbols: symbols}
}

func (s step[N]) hasPosition(pos int) bool {
	for _, sym := range s.symbols {
		if sym.pos == pos {
			return true
		}
	}
	return false
}

// buildRows runs the fixed-point relaxation that drives every cursor from
// its current column to its target column, one row at a time, and returns
// the symbols deposited on each row.
//
// A row is produced even when every cursor already sits on its target (a
// single row of [Hold] symbols), matching straight-through paths; otherwise
// the loop stops right after the row on which every cursor reaches its
// target.
func buildRows[N cmp.Ordered](cursors []layout.Cursor[N]) [][]symbolAt {
	var rows [][]symbolAt

	for {
		if len(rows) > 0 && allAtTarget(cursors) {
			break
		}

		steps := make([]step[N], len(cursors))
		for i, c := range cursors {
			steps[i] = moveCursor(c)
		}
		steps = relaxLeft(steps)

		row := make([]symbolAt, 0, len(steps))
		next := make([]layout.Cursor[N], len(steps))
		for i, s := range steps {
			next[i] = s.cursor
			row = append(row, s.symbols...)
		}
		cursors = next
		rows = append(rows, row)
	}

	return rows
}

func allAtTarget[N cmp.Ordered](cursors []layout.Cursor[N]) bool {
	for _, c := range cursors {
		if c.Current != c.Target {
			return false
		}
	}
	return true
}

// moveCursor advances a single cursor one column toward its target,
// depositing the diagonal (or straight) symbol for that move.
func moveCursor[N cmp.Ordered](c layout.Cursor[N]) step[N] {
	s := step[N]{cursor: c}
	switch {
	case c.Current < c.Target:
		return s.movedBy(2).withSymbols(symbolAt{c.Current + 1, NewSymbol(Right)})
	case c.Current > c.Target:
		return s.movedBy(-2).withSymbols(symbolAt{c.Current - 1, NewSymbol(Left)})
	default:
		return s.withSymbols(symbolAt{c.Current, NewSymbol(Hold)})
	}
}

// relaxLeft repeatedly slides cursors that are still right of their target
// further left (see slideLeftPass), until a pass changes nothing.
func relaxLeft[N cmp.Ordered](steps []step[N]) []step[N] {
	next := slideLeftPass(steps)
	for !stepsEqual(next, steps) {
		steps = next
		next = slideLeftPass(steps)
	}
	return next
}

// slideLeftPass implements a single pass of the slide-left relaxation.
// When a cursor is still right of its target, it checks what already
// occupies its current column and the column just to its left:
//
//   - nothing at either column: slide left two columns, filling the gap
//     with two LeftMove underscores.
//   - only the left column is occupied, by a cursor bound for the same
//     target: slide left two columns, filling the single gap column.
//   - the current column is occupied by a cursor bound for the same
//     target: slide left with no new symbols (the paths merge).
//   - anything else: leave the cursor where it is.
func slideLeftPass[N cmp.Ordered](steps []step[N]) []step[N] {
	out := make([]step[N], len(steps))

	for i, s := range steps {
		current := s.cursor.Current
		if current <= s.cursor.Target {
			out[i] = s
			continue
		}

		stepCurr := findStep(steps, current)
		stepLeft := findStep(steps, current-1)

		switch {
		case stepCurr == nil && stepLeft == nil:
			out[i] = s.movedBy(-2).withSymbols(
				symbolAt{current - 1, NewSymbol(LeftMove)},
				symbolAt{current, NewSymbol(LeftMove)},
			)
		case stepCurr == nil:
			if stepLeft.cursor.Target != s.cursor.Target {
				out[i] = s
				continue
			}
			out[i] = s.movedBy(-2).withSymbols(symbolAt{current, NewSymbol(LeftMove)})
		default:
			if stepCurr.cursor.Target != s.cursor.Target {
				out[i] = s
				continue
			}
			out[i] = s.movedBy(-2)
		}
	}

	return out
}

// findStep returns the first step (in original order) with a symbol at
// the given column, or nil.
func findStep[N cmp.Ordered](steps []step[N], pos int) *step[N] {
	for i := range steps {
		if steps[i].hasPosition(pos) {
			return &steps[i]
		}
	}
	return nil
}

func stepsEqual[N cmp.Ordered](a, b []step[N]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].cursor != b[i].cursor {
			return false
		}
		if !sameSymbolSet(a[i].symbols, b[i].symbols) {
			return false
		}
	}
	return true
}

func sameSymbolSet(a, b []symbolAt) bool {
	counts := make(map[symbolAt]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
