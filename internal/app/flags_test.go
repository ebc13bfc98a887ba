package app

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestCellAt(t *testing.T) {
	cases := []struct {
		x, y     int
		row, col int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{47, 47, 0, 0, true},
		{48, 0, 0, 1, true},
		{100, 479, 9, 2, true},
		{480, 10, 0, 0, false},
		{10, 480, 0, 0, false},
		{-1, 10, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := CellAt(tc.x, tc.y, 48, 10)
		if ok != tc.ok || row != tc.row || col != tc.col {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.x, tc.y, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--scale", "32", "--tps", "30"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Scale != 32 || cfg.TPS != 30 || cfg.PanelWidth != 240 {
		t.Fatalf("unexpected config %+v", *cfg)
	}
}
