package ui

import (
	"fmt"
	"image"
)

const (
	panelPadding   = 12
	lineHeight     = 16
	buttonHeight   = 28
	buttonGap      = 8
	stepButtonSize = 22
	headerBaseline = 18
	countsTop      = panelPadding + headerBaseline + 16
)

// Action is what a click on the panel asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionFill
	ActionFillLess
	ActionFillMore
)

// panelLayout holds the hit rectangles of the panel's controls, relative to
// the panel's top-left corner.
type panelLayout struct {
	fillTop   int
	minusRect image.Rectangle
	plusRect  image.Rectangle
	resetRect image.Rectangle
	fillRect  image.Rectangle
}

// layoutPanel places the counts block for an n*n grid, then the fill
// probability control, then the two buttons, in a panel of the given width.
func layoutPanel(width, n int) panelLayout {
	var l panelLayout
	l.fillTop = countsTop + (n+1)*lineHeight + buttonGap

	stepY := l.fillTop + (lineHeight-stepButtonSize)/2
	l.plusRect = image.Rect(width-panelPadding-stepButtonSize, stepY, width-panelPadding, stepY+stepButtonSize)
	l.minusRect = image.Rect(l.plusRect.Min.X-buttonGap-stepButtonSize, stepY, l.plusRect.Min.X-buttonGap, stepY+stepButtonSize)

	top := l.fillTop + stepButtonSize + buttonGap
	l.resetRect = image.Rect(panelPadding, top, width-panelPadding, top+buttonHeight)
	top += buttonHeight + buttonGap
	l.fillRect = image.Rect(panelPadding, top, width-panelPadding, top+buttonHeight)
	return l
}

// Height returns the panel height needed for an n*n grid.
func (l panelLayout) Height() int { return l.fillRect.Max.Y + panelPadding }

// hit maps a click at panel-relative (x, y) to an action.
func (l panelLayout) hit(x, y int) Action {
	switch {
	case pointInRect(x, y, l.resetRect):
		return ActionReset
	case pointInRect(x, y, l.fillRect):
		return ActionFill
	case pointInRect(x, y, l.minusRect):
		return ActionFillLess
	case pointInRect(x, y, l.plusRect):
		return ActionFillMore
	default:
		return ActionNone
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// countLines pairs row and column counts into panel lines, 1-indexed for
// display.
func countLines(rows, cols []int) []string {
	out := make([]string, len(rows))
	for i := range rows {
		c := 0
		if i < len(cols) {
			c = cols[i]
		}
		out[i] = fmt.Sprintf("Row %-2d: %d   Col %-2d: %d", i+1, rows[i], i+1, c)
	}
	return out
}

// PanelHeight returns the minimum panel height for an n*n grid.
func PanelHeight(width, n int) int { return layoutPanel(width, n).Height() }
