package render

import "image/color"

// Palette colours filled and empty cells, with variants for the cell under
// the mouse.
type Palette struct {
	On       color.RGBA
	Off      color.RGBA
	HoverOn  color.RGBA
	HoverOff color.RGBA
}

// DefaultPalette matches the dark panel theme.
func DefaultPalette() Palette {
	return Palette{
		On:       color.RGBA{R: 52, G: 152, B: 219, A: 255},
		Off:      color.RGBA{R: 236, G: 240, B: 241, A: 255},
		HoverOn:  color.RGBA{R: 41, G: 128, B: 185, A: 255},
		HoverOff: color.RGBA{R: 210, G: 218, B: 222, A: 255},
	}
}

// fillCellsRGBA converts binary cell data into RGBA pixels in buf, one pixel
// per cell. hover is the linear index of the highlighted cell, or -1.
func fillCellsRGBA(buf []byte, cells []uint8, hover int, pal Palette) {
	for i, c := range cells {
		col := pal.Off
		switch {
		case c != 0 && i == hover:
			col = pal.HoverOn
		case c != 0:
			col = pal.On
		case i == hover:
			col = pal.HoverOff
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
