//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"gridlock/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Panel renders row/column counts and the puzzle controls to the right of
// the grid.
type Panel struct {
	eng    *engine.Engine
	width  int
	layout panelLayout
	panel  *ebiten.Image
	pixel  *ebiten.Image
}

// NewPanel constructs a panel of the given width for eng.
func NewPanel(eng *engine.Engine, width int) *Panel {
	p := &Panel{eng: eng, width: width, layout: layoutPanel(width, eng.Size())}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update returns the action for a left click inside the panel, which starts
// at screen x offsetX.
func (p *Panel) Update(offsetX int) Action {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return ActionNone
	}
	return p.layout.hit(mx-offsetX, my)
}

// Draw paints the panel at screen x offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, height int) {
	if p.width <= 0 || height <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dy() != height {
		p.panel = ebiten.NewImage(p.width, height)
	}
	p.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(p.panel, "Counts", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	g := p.eng.Grid()
	for i, line := range countLines(g.RowCounts(), g.ColumnCounts()) {
		text.Draw(p.panel, line, face, panelPadding, countsTop+i*lineHeight+lineHeight-3, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	label := fmt.Sprintf("Fill chance %.2f", p.eng.FillProbability())
	text.Draw(p.panel, label, face, panelPadding, p.layout.fillTop+lineHeight-2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	p.drawButton(p.layout.minusRect, "-")
	p.drawButton(p.layout.plusRect, "+")
	p.drawButton(p.layout.resetRect, "Reset Grid")
	p.drawButton(p.layout.fillRect, "Random Fill")

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	p.panel.DrawImage(p.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
