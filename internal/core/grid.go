package core

// BitGrid stores a square grid of binary cells in row-major order.
type BitGrid struct {
	N    int
	data []uint8
}

// NewBitGrid allocates an empty n*n grid.
func NewBitGrid(n int) *BitGrid {
	if n <= 0 {
		n = 1
	}
	return &BitGrid{N: n, data: make([]uint8, n*n)}
}

// WrapBitGrid adopts cells as the backing slice of an n*n grid.
// The caller must not retain cells.
func WrapBitGrid(n int, cells []uint8) *BitGrid {
	return &BitGrid{N: n, data: cells}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BitGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *BitGrid) Index(row, col int) int { return row*g.N + col }

// InBounds reports whether (row, col) lies inside the grid. There is no
// wraparound.
func (g *BitGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// Filled reports whether (row, col) is set.
func (g *BitGrid) Filled(row, col int) bool { return g.data[g.Index(row, col)] != 0 }

// Set marks (row, col) filled or empty.
func (g *BitGrid) Set(row, col int, filled bool) {
	var v uint8
	if filled {
		v = 1
	}
	g.data[g.Index(row, col)] = v
}

// RowCount returns the number of filled cells in row.
func (g *BitGrid) RowCount(row int) int {
	n := 0
	for _, c := range g.data[row*g.N : (row+1)*g.N] {
		n += int(c)
	}
	return n
}

// ColCount returns the number of filled cells in col.
func (g *BitGrid) ColCount(col int) int {
	n := 0
	for i := col; i < len(g.data); i += g.N {
		n += int(g.data[i])
	}
	return n
}

// Orthogonal lists the (row, col) offsets of the four edge-adjacent
// neighbors: up, down, left, right.
var Orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Neighbors4 calls fn for every in-bounds orthogonal neighbor of (row, col).
// Out-of-bounds neighbors are skipped rather than wrapped.
func (g *BitGrid) Neighbors4(row, col int, fn func(r, c int)) {
	for _, d := range Orthogonal {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			fn(r, c)
		}
	}
}
