//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads the puzzle grid into an n*n image and draws it scaled,
// with separating lines between cells.
type GridPainter struct {
	n   int
	img *ebiten.Image
	buf []byte
	pal Palette

	lineColor color.RGBA
}

// NewGridPainter allocates a painter for an n*n grid.
func NewGridPainter(n int) *GridPainter {
	return &GridPainter{
		n:         n,
		img:       ebiten.NewImage(n, n),
		buf:       make([]byte, 4*n*n),
		pal:       DefaultPalette(),
		lineColor: color.RGBA{R: 44, G: 62, B: 80, A: 255},
	}
}

// Blit draws cells onto dst with each cell scale pixels wide. hover is the
// linear index of the cell under the cursor, or -1.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, hover, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillCellsRGBA(gp.buf, cells, hover, gp.pal)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	span := float32(gp.n * scale)
	for i := 0; i <= gp.n; i++ {
		p := float32(i * scale)
		vector.StrokeLine(dst, p, 0, p, span, 1, gp.lineColor, false)
		vector.StrokeLine(dst, 0, p, span, p, 1, gp.lineColor, false)
	}
}
