package engine

import (
	"bytes"
	"strings"

	"gridlock/internal/core"
)

// Snapshot is an immutable view of a committed grid. The engine creates one
// per commit; readers may hold and share it freely.
type Snapshot struct {
	n     int
	cells []uint8
}

func emptySnapshot(n int) Snapshot {
	return Snapshot{n: n, cells: make([]uint8, n*n)}
}

// snapshotOf takes ownership of g's cells; g must not be touched afterwards.
func snapshotOf(g *core.BitGrid) Snapshot {
	return Snapshot{n: g.N, cells: g.Cells()}
}

// grid returns a mutable copy to build a candidate from.
func (s Snapshot) grid() *core.BitGrid {
	return core.WrapBitGrid(s.n, s.Cells())
}

// Size returns the grid dimension N.
func (s Snapshot) Size() int { return s.n }

// At returns 1 when (row, col) is filled and 0 otherwise. It panics on
// coordinates outside the grid, like a slice index would.
func (s Snapshot) At(row, col int) uint8 {
	if row < 0 || row >= s.n || col < 0 || col >= s.n {
		panic("engine: snapshot index out of range")
	}
	return s.cells[row*s.n+col]
}

// Filled reports whether (row, col) is filled.
func (s Snapshot) Filled(row, col int) bool { return s.At(row, col) != 0 }

// Cells returns a row-major copy of the grid.
func (s Snapshot) Cells() []uint8 {
	cp := make([]uint8, len(s.cells))
	copy(cp, s.cells)
	return cp
}

// RowCounts returns the number of filled cells per row, in row order.
func (s Snapshot) RowCounts() []int {
	g := core.WrapBitGrid(s.n, s.cells)
	out := make([]int, s.n)
	for i := range out {
		out[i] = g.RowCount(i)
	}
	return out
}

// ColumnCounts returns the number of filled cells per column, in column order.
func (s Snapshot) ColumnCounts() []int {
	g := core.WrapBitGrid(s.n, s.cells)
	out := make([]int, s.n)
	for i := range out {
		out[i] = g.ColCount(i)
	}
	return out
}

// FilledCount returns the total number of filled cells.
func (s Snapshot) FilledCount() int {
	n := 0
	for _, c := range s.cells {
		n += int(c)
	}
	return n
}

// Check validates the snapshot against both grid invariants.
func (s Snapshot) Check() *Violation { return CheckConstraints(s.cells, s.n) }

// Equal reports whether two snapshots hold the same grid.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.n == o.n && bytes.Equal(s.cells, o.cells)
}

// String renders the grid as rows of '#' (filled) and '.' (empty).
func (s Snapshot) String() string {
	var b strings.Builder
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if s.cells[r*s.n+c] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
