//go:build ebiten

package ui

import (
	"image/color"

	"gridlock/internal/notify"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const toastHeight = 36

// Toasts draws active notifications stacked from the top-right corner.
type Toasts struct {
	notes *notify.Center
	width int
	pixel *ebiten.Image
}

// NewToasts returns an overlay for notes with toasts width pixels wide.
func NewToasts(notes *notify.Center, width int) *Toasts {
	t := &Toasts{notes: notes, width: width}
	t.pixel = ebiten.NewImage(1, 1)
	t.pixel.Fill(color.White)
	return t
}

// Draw renders toasts with their right edge at x = right.
func (t *Toasts) Draw(screen *ebiten.Image, right int) {
	face := basicfont.Face7x13
	x := right - t.width - panelPadding
	for i, toast := range t.notes.Active() {
		y := panelPadding + i*(toastHeight+buttonGap)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(t.width), toastHeight)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(toastColor(toast.Level))
		screen.DrawImage(t.pixel, op)

		text.Draw(screen, toast.Message, face, x+8, y+15, color.White)
		if toast.Detail != "" {
			text.Draw(screen, toast.Detail, face, x+8, y+29, color.RGBA{R: 235, G: 235, B: 235, A: 255})
		}
	}
}

func toastColor(l notify.Level) color.RGBA {
	switch l {
	case notify.LevelError:
		return color.RGBA{R: 231, G: 76, B: 60, A: 235}
	case notify.LevelWarn:
		return color.RGBA{R: 241, G: 196, B: 15, A: 235}
	default:
		return color.RGBA{R: 52, G: 152, B: 219, A: 235}
	}
}
