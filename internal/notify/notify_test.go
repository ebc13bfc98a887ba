package notify

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridlock/internal/engine"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCenter(opts ...Option) (*Center, *fakeClock) {
	clk := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewCenter(append([]Option{WithClock(clk.Now)}, opts...)...), clk
}

func TestReportViolation(t *testing.T) {
	c, _ := newTestCenter()
	c.Report(&engine.Violation{Kind: engine.ViolationBlock, Row: 2, Col: 2})

	toasts := c.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, LevelError, toasts[0].Level)
	assert.Equal(t, ViolationMessage, toasts[0].Message)
	assert.Equal(t, "2x2 block at (2,2) would be filled", toasts[0].Detail)
}

func TestReportMapsErrorKinds(t *testing.T) {
	c, _ := newTestCenter()
	c.Report(nil)
	assert.Empty(t, c.Active())

	c.Report(&engine.GenerationError{Attempts: 10, Probability: 0.9})
	c.Report(fmt.Errorf("toggle: %w", engine.ErrOutOfRange))
	c.Report(errors.New("boom"))

	toasts := c.Active()
	require.Len(t, toasts, 3)
	assert.Equal(t, "Operation failed", toasts[0].Message)
	assert.Equal(t, "Cell out of range", toasts[1].Message)
	assert.Equal(t, LevelWarn, toasts[2].Level)
}

func TestToastsExpire(t *testing.T) {
	c, clk := newTestCenter(WithTTL(time.Second))
	c.Info("Grid reset")
	clk.Advance(500 * time.Millisecond)
	c.Info("Grid filled")
	require.Len(t, c.Active(), 2)

	clk.Advance(600 * time.Millisecond)
	toasts := c.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Grid filled", toasts[0].Message)

	clk.Advance(time.Second)
	assert.Empty(t, c.Active())
}

func TestLimitDropsOldest(t *testing.T) {
	c, _ := newTestCenter(WithLimit(2))
	c.Info("one")
	c.Info("two")
	c.Info("three")

	toasts := c.Active()
	require.Len(t, toasts, 2)
	assert.Equal(t, "three", toasts[0].Message)
	assert.Equal(t, "two", toasts[1].Message)

	c.Clear()
	assert.Empty(t, c.Active())
}
