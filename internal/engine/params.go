package engine

import (
	"strconv"

	"gridlock/internal/core"
)

// ParamFillProbability is the key of the adjustable random-fill density.
const ParamFillProbability = "fill_probability"

// Parameters describes the engine's current settings for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", e.n),
				intParam("max_per_line", "Max per line", MaxPerLine),
			},
		},
		{
			Name: "Random Fill",
			Params: []core.Parameter{
				floatParam(ParamFillProbability, "Fill probability", e.cfg.FillProbability),
				intParam("max_attempts", "Max attempts", e.cfg.MaxAttempts),
			},
		},
	}}
}

// ParameterControls lists the settings front ends may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    ParamFillProbability,
		Label:  "Fill probability",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates an adjustable setting. It reports false for
// unknown keys and out-of-range values.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != ParamFillProbability || !validProbability(value) {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.FillProbability = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
