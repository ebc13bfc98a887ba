// Command gridlock runs the toggle-grid puzzle in a terminal or a desktop
// window, and can sample the random fill for statistics.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gridlock/internal/engine"
	"gridlock/internal/logging"
)

// options holds the flags shared by every subcommand.
type options struct {
	configPath  string
	overrides   []string
	size        int
	fill        float64
	maxAttempts int
	seed        int64

	logLevel string
	logFile  string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "gridlock",
		Short: "A toggle-grid constraint puzzle",
		Long: `gridlock is a 10x10 puzzle: switching a cell on also fills its four
neighbours, no row or column may hold more than 3 filled cells, and no
2x2 block may be completely filled.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := engine.DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML config file")
	pf.StringArrayVar(&opts.overrides, "set", nil, "config override in key=value form (repeatable)")
	pf.IntVar(&opts.size, "size", def.Size, "grid dimension")
	pf.Float64Var(&opts.fill, "fill", def.FillProbability, "random fill probability per cell")
	pf.IntVar(&opts.maxAttempts, "max-attempts", def.MaxAttempts, "random fill attempts before giving up")
	pf.Int64Var(&opts.seed, "seed", def.Seed, "random seed (0 = time based)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.BoolVar(&opts.logJSON, "log-json", false, "emit JSON logs")

	root.AddCommand(newPlayCmd(opts), newGUICmd(opts), newSampleCmd(opts))
	return root
}

// engineConfig layers defaults, the config file, --set overrides and
// explicit flags, in that order.
func (o *options) engineConfig(cmd *cobra.Command) (engine.Config, error) {
	cfg := engine.DefaultConfig()
	if o.configPath != "" {
		loaded, err := engine.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	kv := make(map[string]string, len(o.overrides))
	for _, pair := range o.overrides {
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return cfg, fmt.Errorf("--set %q: expected key=value", pair)
		}
		kv[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg = engine.ApplyMap(cfg, kv)

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = o.size
	}
	if flags.Changed("fill") {
		cfg.FillProbability = o.fill
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts = o.maxAttempts
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	return cfg, cfg.Validate()
}

// logger builds the command logger. quiet discards output when no log file
// is set, for front ends that own the terminal.
func (o *options) logger(quiet bool) (*slog.Logger, func() error, error) {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return logging.New(logging.Config{
		Level: level,
		JSON:  o.logJSON,
		File:  o.logFile,
		Quiet: quiet,
	})
}

// newEngine wires config and logger into an engine.
func (o *options) newEngine(cmd *cobra.Command, log *slog.Logger) (*engine.Engine, error) {
	cfg, err := o.engineConfig(cmd)
	if err != nil {
		return nil, err
	}
	log.Debug("engine config", "size", cfg.Size, "fill", cfg.FillProbability, "max_attempts", cfg.MaxAttempts, "seed", cfg.Seed)
	return engine.New(cfg, engine.WithLogger(log))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("gridlock failed", "error", err)
		os.Exit(1)
	}
}
