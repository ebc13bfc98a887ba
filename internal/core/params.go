package core

import "math"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
)

// Parameter describes a single value exposed by the engine for display.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of parameters.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that front ends expose
// with +/- buttons. Steps and bounds are optional and interpreted based on
// the parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Clamp bounds v to the control's optional limits.
func (c ParameterControl) Clamp(v float64) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}

// Nudge moves v by direction steps, snapping to the step grid and clamping to
// the control's bounds. A non-positive Step defaults to 0.05.
func (c ParameterControl) Nudge(v float64, direction int) float64 {
	step := c.Step
	if step <= 0 {
		step = 0.05
	}
	v = math.Round((v+float64(direction)*step)/step) * step
	return c.Clamp(v)
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows front-end interactions to update floating
// point parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// Adjustable exposes float controls that can be written back.
type Adjustable interface {
	ParameterControlsProvider
	FloatParameterSetter
}

// NudgeFloat moves the float control key of a by direction steps from
// current. It reports whether a accepted the new value.
func NudgeFloat(a Adjustable, key string, current float64, direction int) bool {
	for _, ctrl := range a.ParameterControls() {
		if ctrl.Key == key && ctrl.Type == ParamTypeFloat {
			return a.SetFloatParameter(key, ctrl.Nudge(current, direction))
		}
	}
	return false
}
