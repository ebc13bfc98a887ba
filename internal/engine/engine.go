// Package engine implements the toggle-grid puzzle: an N*N binary grid where
// switching a cell on also fills its orthogonal neighbors, and where every
// committed grid keeps at most MaxPerLine filled cells per row and column
// and never holds a fully filled 2x2 block.
//
// Every mutation builds a candidate grid, validates it with
// CheckConstraints, and either commits it as a new Snapshot or discards it
// and leaves the current grid untouched.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"gridlock/internal/core"
)

// Engine owns the current grid. It is safe for concurrent use; every
// operation runs under one mutex.
type Engine struct {
	mu sync.Mutex

	cfg   Config
	n     int
	cur   Snapshot
	rng   *rand.Rand
	log   *slog.Logger
	stats Stats
}

// Option customises an Engine at construction.
type Option func(*Engine)

// WithLogger routes engine logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRand replaces the seeded source used by Randomize.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// New returns an engine holding an empty grid of cfg.Size.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	e := &Engine{
		cfg: cfg,
		n:   cfg.Size,
		cur: emptySnapshot(cfg.Size),
		rng: core.NewRNG(seed).Source(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Size returns the grid dimension.
func (e *Engine) Size() int { return e.n }

// Grid returns the current snapshot.
func (e *Engine) Grid() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur
}

// RowCounts returns the filled-cell count of each row of the current grid.
func (e *Engine) RowCounts() []int { return e.Grid().RowCounts() }

// ColumnCounts returns the filled-cell count of each column of the current grid.
func (e *Engine) ColumnCounts() []int { return e.Grid().ColumnCounts() }

// Toggle flips (row, col). An empty cell becomes filled together with its
// in-bounds orthogonal neighbors; a filled cell is emptied on its own.
//
// When the result would break an invariant, Toggle returns the unchanged
// current snapshot and a *Violation. Coordinates outside the grid yield
// ErrOutOfRange.
func (e *Engine) Toggle(row, col int) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if row < 0 || row >= e.n || col < 0 || col >= e.n {
		return e.cur, fmt.Errorf("toggle (%d,%d) on %dx%d grid: %w", row, col, e.n, e.n, ErrOutOfRange)
	}

	cand := e.cur.grid()
	if cand.Filled(row, col) {
		cand.Set(row, col, false)
	} else {
		cand.Set(row, col, true)
		cand.Neighbors4(row, col, func(r, c int) { cand.Set(r, c, true) })
	}

	if v := CheckConstraints(cand.Cells(), e.n); v != nil {
		e.stats.recordRejection(v.Kind)
		e.log.Info("toggle rejected", "row", row, "col", col, "violation", v.Kind.String(), "detail", v.Error())
		return e.cur, v
	}

	e.cur = snapshotOf(cand)
	e.stats.Accepted++
	e.log.Debug("toggle committed", "row", row, "col", col, "filled", e.cur.FilledCount())
	return e.cur, nil
}

// Reset empties the grid.
func (e *Engine) Reset() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur = emptySnapshot(e.n)
	e.stats.Resets++
	e.log.Debug("grid reset")
	return e.cur
}

// Randomize samples fresh grids with each cell filled independently with
// probability p until one satisfies both invariants, then commits it.
// Invalid candidates are discarded, never repaired. After Config.MaxAttempts
// failed samples it returns a *GenerationError and keeps the current grid.
func (e *Engine) Randomize(p float64) (Snapshot, error) {
	if !validProbability(p) {
		return e.Grid(), fmt.Errorf("randomize: %w (got %v)", ErrInvalidProbability, p)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stats.Randomized++
	cand := core.NewBitGrid(e.n)
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		core.FillBernoulli(e.rng, cand.Cells(), p)
		if CheckConstraints(cand.Cells(), e.n) != nil {
			continue
		}
		e.cur = snapshotOf(cand)
		e.stats.Attempts += attempt
		e.stats.LastAttempts = attempt
		e.log.Debug("random fill committed", "p", p, "attempts", attempt, "filled", e.cur.FilledCount())
		return e.cur, nil
	}

	e.stats.Attempts += e.cfg.MaxAttempts
	e.stats.LastAttempts = e.cfg.MaxAttempts
	e.stats.RandomizeFailures++
	err := &GenerationError{Attempts: e.cfg.MaxAttempts, Probability: p}
	e.log.Warn("random fill failed", "p", p, "attempts", e.cfg.MaxAttempts)
	return e.cur, err
}

// FillProbability returns the probability front ends pass to Randomize.
func (e *Engine) FillProbability() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.FillProbability
}

// Stats returns a copy of the engine's counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
