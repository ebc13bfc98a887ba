// Package logging builds the slog logger shared by the gridlock commands.
//
// Output goes to stderr by default. Interactive front ends own the terminal,
// so they either point File at a log file or run with Quiet set, which
// discards everything.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config selects the level, format and destination of log output.
type Config struct {
	Level slog.Level
	JSON  bool
	// File, when set, receives logs instead of stderr. Parent directories
	// are created as needed.
	File string
	// Quiet discards all output unless File is set.
	Quiet bool
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a logger for cfg and a close function that flushes and
// closes any opened file. The close function is never nil.
func New(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	var w io.Writer = os.Stderr
	closeFn := noop
	switch {
	case cfg.File != "":
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
			return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	case cfg.Quiet:
		return slog.New(slog.DiscardHandler), noop, nil
	}
	return slog.New(handler(w, cfg)), closeFn, nil
}

func handler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.JSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
