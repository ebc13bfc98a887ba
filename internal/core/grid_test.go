package core

import "testing"

func TestNeighbors4SkipsOutOfBounds(t *testing.T) {
	g := NewBitGrid(4)
	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 2},
		{0, 2, 3},
		{3, 3, 2},
		{1, 2, 4},
	}
	for _, tc := range cases {
		got := 0
		g.Neighbors4(tc.row, tc.col, func(r, c int) {
			if !g.InBounds(r, c) {
				t.Fatalf("neighbor (%d,%d) of (%d,%d) out of bounds", r, c, tc.row, tc.col)
			}
			got++
		})
		if got != tc.want {
			t.Fatalf("(%d,%d): got %d neighbors, expected %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestRowAndColCount(t *testing.T) {
	g := NewBitGrid(3)
	g.Set(0, 0, true)
	g.Set(0, 2, true)
	g.Set(2, 2, true)

	if got := g.RowCount(0); got != 2 {
		t.Fatalf("row 0 count = %d, expected 2", got)
	}
	if got := g.ColCount(2); got != 2 {
		t.Fatalf("col 2 count = %d, expected 2", got)
	}
	if got := g.RowCount(1); got != 0 {
		t.Fatalf("row 1 count = %d, expected 0", got)
	}

	g.Set(0, 0, false)
	if g.Filled(0, 0) || g.RowCount(0) != 1 {
		t.Fatalf("clearing (0,0) should leave one filled cell in row 0")
	}
}

func TestFillBernoulliExtremes(t *testing.T) {
	rng := NewRNG(1).Source()
	buf := make([]uint8, 64)
	FillBernoulli(rng, buf, 1)
	for i, c := range buf {
		if c != 1 {
			t.Fatalf("cell %d = %d with p=1", i, c)
		}
	}
	FillBernoulli(rng, buf, 0)
	for i, c := range buf {
		if c != 0 {
			t.Fatalf("cell %d = %d with p=0", i, c)
		}
	}
}
