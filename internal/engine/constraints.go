package engine

import "gridlock/internal/core"

// MaxPerLine is the most filled cells any single row or column may hold.
const MaxPerLine = 3

// CheckConstraints validates an n*n row-major grid. It scans row i then
// column i for each i, then every 2x2 block top-to-bottom, left-to-right,
// and returns the first violation found, or nil when both invariants hold.
func CheckConstraints(cells []uint8, n int) *Violation {
	g := core.WrapBitGrid(n, cells)
	for i := 0; i < n; i++ {
		if c := g.RowCount(i); c > MaxPerLine {
			return &Violation{Kind: ViolationLineCap, Axis: AxisRow, Index: i, Count: c}
		}
		if c := g.ColCount(i); c > MaxPerLine {
			return &Violation{Kind: ViolationLineCap, Axis: AxisColumn, Index: i, Count: c}
		}
	}
	for r := 0; r < n-1; r++ {
		for c := 0; c < n-1; c++ {
			if g.Filled(r, c) && g.Filled(r, c+1) && g.Filled(r+1, c) && g.Filled(r+1, c+1) {
				return &Violation{Kind: ViolationBlock, Row: r, Col: c}
			}
		}
	}
	return nil
}
