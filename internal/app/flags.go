package app

import "github.com/spf13/pflag"

// Config holds the desktop window settings.
type Config struct {
	Scale      int
	PanelWidth int
	TPS        int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 48, PanelWidth: 240, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per grid cell")
	fs.IntVar(&c.PanelWidth, "panel-width", c.PanelWidth, "width of the counts panel in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// CellAt maps screen coordinates to a grid cell for an n*n grid drawn with
// scale-pixel cells from the origin.
func CellAt(x, y, scale, n int) (row, col int, ok bool) {
	if scale <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/scale, x/scale
	if row >= n || col >= n {
		return 0, 0, false
	}
	return row, col, true
}
