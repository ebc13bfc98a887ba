//go:build ebiten

package main

import (
	"github.com/spf13/cobra"

	"gridlock/internal/app"
	"gridlock/internal/notify"
)

func newGUICmd(opts *options) *cobra.Command {
	win := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Play in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := opts.logger(false)
			if err != nil {
				return err
			}
			defer closeLog()

			eng, err := opts.newEngine(cmd, log)
			if err != nil {
				return err
			}
			notes := notify.NewCenter(notify.WithLogger(log))
			return app.Run(eng, notes, win, log)
		},
	}
	win.Bind(cmd.Flags())
	return cmd
}
