//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"gridlock/internal/core"
	"gridlock/internal/engine"
	"gridlock/internal/notify"
	"gridlock/internal/render"
	"gridlock/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the puzzle engine to the ebiten.Game interface.
type Game struct {
	eng     *engine.Engine
	notes   *notify.Center
	painter *render.GridPainter
	panel   *ui.Panel
	toasts  *ui.Toasts
	log     *slog.Logger

	scale      int
	panelWidth int
}

// New constructs a Game for the provided engine.
func New(eng *engine.Engine, notes *notify.Center, cfg *Config, log *slog.Logger) *Game {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{
		eng:        eng,
		notes:      notes,
		painter:    render.NewGridPainter(eng.Size()),
		panel:      ui.NewPanel(eng, cfg.PanelWidth),
		toasts:     ui.NewToasts(notes, 260),
		log:        log,
		scale:      cfg.Scale,
		panelWidth: cfg.PanelWidth,
	}
}

// Run opens the window and blocks until it is closed.
func Run(eng *engine.Engine, notes *notify.Center, cfg *Config, log *slog.Logger) error {
	game := New(eng, notes, cfg, log)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("gridlock — %dx%d", eng.Size(), eng.Size()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input for the current frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fill()
	}

	switch g.panel.Update(g.gridSpan()) {
	case ui.ActionReset:
		g.reset()
	case ui.ActionFill:
		g.fill()
	case ui.ActionFillLess:
		g.nudgeFill(-1)
	case ui.ActionFillMore:
		g.nudgeFill(1)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := CellAt(x, y, g.scale, g.eng.Size()); ok {
			_, err := g.eng.Toggle(row, col)
			g.notes.Report(err)
		}
	}
	return nil
}

func (g *Game) reset() {
	g.eng.Reset()
	g.notes.Info("Grid reset")
}

func (g *Game) fill() {
	if _, err := g.eng.Randomize(g.eng.FillProbability()); err != nil {
		g.log.Warn("random fill failed", "error", err)
		g.notes.Report(err)
		return
	}
	g.notes.Info(fmt.Sprintf("Random fill accepted after %d attempts", g.eng.Stats().LastAttempts))
}

func (g *Game) nudgeFill(direction int) {
	core.NudgeFloat(g.eng, engine.ParamFillProbability, g.eng.FillProbability(), direction)
}

// Draw renders the grid, the panel and any toasts.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	hover := -1
	x, y := ebiten.CursorPosition()
	if row, col, ok := CellAt(x, y, g.scale, g.eng.Size()); ok {
		hover = row*g.eng.Size() + col
	}
	g.painter.Blit(screen, g.eng.Grid().Cells(), hover, g.scale)

	_, h := g.Layout(0, 0)
	g.panel.Draw(screen, g.gridSpan(), h)
	g.toasts.Draw(screen, g.gridSpan())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	span := g.gridSpan()
	return span + g.panelWidth, max(span, ui.PanelHeight(g.panelWidth, g.eng.Size()))
}

func (g *Game) gridSpan() int { return g.eng.Size() * g.scale }
