package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gridlock/internal/engine"
)

// sampleReport summarises repeated random fills.
type sampleReport struct {
	Runs        int
	Failures    int
	MeanAttempt float64
	StdAttempt  float64
	MaxAttempt  float64
	MeanDensity float64
}

func newSampleCmd(opts *options) *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Run the random fill repeatedly and report attempt statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runs < 1 {
				return fmt.Errorf("--runs must be positive, got %d", runs)
			}
			log, closeLog, err := opts.logger(false)
			if err != nil {
				return err
			}
			defer closeLog()

			eng, err := opts.newEngine(cmd, log)
			if err != nil {
				return err
			}
			rep, err := runSample(eng, runs)
			if err != nil {
				return err
			}
			printReport(cmd, eng, rep)
			return nil
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 1000, "number of random fills")
	return cmd
}

func runSample(eng *engine.Engine, runs int) (sampleReport, error) {
	rep := sampleReport{Runs: runs}
	p := eng.FillProbability()
	cells := float64(eng.Size() * eng.Size())

	attempts := make([]float64, 0, runs)
	density := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		g, err := eng.Randomize(p)
		switch {
		case errors.Is(err, engine.ErrGenerationFailed):
			rep.Failures++
			continue
		case err != nil:
			return rep, err
		}
		attempts = append(attempts, float64(eng.Stats().LastAttempts))
		density = append(density, float64(g.FilledCount())/cells)
	}
	if len(attempts) > 0 {
		rep.MeanAttempt, rep.StdAttempt = stat.MeanStdDev(attempts, nil)
		rep.MaxAttempt = floats.Max(attempts)
		rep.MeanDensity = stat.Mean(density, nil)
	}
	return rep, nil
}

func printReport(cmd *cobra.Command, eng *engine.Engine, rep sampleReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "grid:          %dx%d\n", eng.Size(), eng.Size())
	fmt.Fprintf(out, "fill:          %.2f\n", eng.FillProbability())
	if p, ok := eng.Parameters().Lookup("max_attempts"); ok {
		fmt.Fprintf(out, "attempt cap:   %s\n", p.Value)
	}
	fmt.Fprintf(out, "runs:          %d\n", rep.Runs)
	fmt.Fprintf(out, "failures:      %d\n", rep.Failures)
	fmt.Fprintf(out, "attempts:      mean %.2f  stddev %.2f  max %.0f\n", rep.MeanAttempt, rep.StdAttempt, rep.MaxAttempt)
	fmt.Fprintf(out, "density:       %.3f\n", rep.MeanDensity)
}
