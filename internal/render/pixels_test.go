package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	pal := DefaultPalette()
	cells := []uint8{1, 0, 1, 0}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, 2, pal)

	want := []color.RGBA{pal.On, pal.Off, pal.HoverOn, pal.Off}
	for i, w := range want {
		got := color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
		if got != w {
			t.Fatalf("pixel %d = %v, expected %v", i, got, w)
		}
	}

	fillCellsRGBA(buf, cells, 1, pal)
	got := color.RGBA{R: buf[4], G: buf[5], B: buf[6], A: buf[7]}
	if got != pal.HoverOff {
		t.Fatalf("hovered empty pixel = %v, expected %v", got, pal.HoverOff)
	}
}
