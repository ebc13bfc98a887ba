package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParametersReflectConfig(t *testing.T) {
	e := newTestEngine(t)
	snap := e.Parameters()

	p, ok := snap.Lookup(ParamFillProbability)
	require.True(t, ok)
	assert.Equal(t, "0.2", p.Value)

	size, ok := snap.Lookup("size")
	require.True(t, ok)
	assert.Equal(t, "10", size.Value)
}

func TestSetFloatParameter(t *testing.T) {
	e := newTestEngine(t)
	assert.True(t, e.SetFloatParameter(ParamFillProbability, 0.35))
	assert.Equal(t, 0.35, e.FillProbability())

	assert.False(t, e.SetFloatParameter(ParamFillProbability, 1.2))
	assert.False(t, e.SetFloatParameter("size", 4))
	assert.Equal(t, 0.35, e.FillProbability())
}

func TestFillControlNudge(t *testing.T) {
	e := newTestEngine(t)
	ctrl := e.ParameterControls()[0]
	require.Equal(t, ParamFillProbability, ctrl.Key)

	assert.InDelta(t, 0.25, ctrl.Nudge(0.2, 1), 1e-9)
	assert.InDelta(t, 0.15, ctrl.Nudge(0.2, -1), 1e-9)
	assert.Equal(t, 1.0, ctrl.Nudge(1, 1))
	assert.Equal(t, 0.0, ctrl.Nudge(0, -1))
}
