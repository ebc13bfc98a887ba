//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoGUI = errors.New("the desktop build of gridlock requires the ebiten build tag; " +
	"re-run with `go run -tags ebiten ./cmd/gridlock gui`")

func newGUICmd(*options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Play in a desktop window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return errNoGUI
		},
	}
}
