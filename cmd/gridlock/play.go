package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gridlock/internal/notify"
	"gridlock/internal/tui"
)

var errNotTerminal = errors.New("play needs an interactive terminal")

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fd := os.Stdout.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return errNotTerminal
			}

			log, closeLog, err := opts.logger(true)
			if err != nil {
				return err
			}
			defer closeLog()

			eng, err := opts.newEngine(cmd, log)
			if err != nil {
				return err
			}
			notes := notify.NewCenter(notify.WithLogger(log))

			log.Info("starting terminal session", "size", eng.Size())
			_, err = tea.NewProgram(tui.New(eng, notes), tea.WithAltScreen()).Run()
			st := eng.Stats()
			log.Info("terminal session ended", "accepted", st.Accepted, "rejected", st.Rejected(), "random_fills", st.Randomized)
			return err
		},
	}
}
