package core

import "strconv"

// ParamType is the kind of value a parameter holds.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
)

// Parameter is one named setting rendered as text.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// IntParameter formats an integer setting.
func IntParameter(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// FloatParameter formats a float setting with the shortest exact representation.
func FloatParameter(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

// Float parses the parameter value. Integer parameters parse as well.
func (p Parameter) Float() (float64, bool) {
	v, err := strconv.ParseFloat(p.Value, 64)
	return v, err == nil
}

// ParameterGroup is a titled list of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the settings behind one render.
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

// ParameterControl is a parameter the HUD can step between Min and Max.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64
	Min   float64
	Max   float64
}

// ParameterProvider exposes a snapshot of the values behind a render.
type ParameterProvider interface {
	Name() string
	Parameters() ParameterSnapshot
}

// ParameterEditor is a ParameterProvider whose controls can be changed.
// Setters report whether the value was accepted.
type ParameterEditor interface {
	ParameterProvider
	ParameterControls() []ParameterControl
	SetIntParameter(key string, value int) bool
	SetFloatParameter(key string, value float64) bool
}
