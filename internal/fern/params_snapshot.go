package fern

import (
	"strconv"

	"fernpond/internal/core"
)

// Group describes the params for presentation.
func (p Params) Group() core.ParameterGroup {
	return core.ParameterGroup{
		Name: "Fern",
		Params: []core.Parameter{
			core.IntParameter("depth", "Depth", p.Depth),
			core.FloatParameter("angle", "Curl angle", p.Angle),
			core.FloatParameter("growth", "Growth", p.Growth),
			core.IntParameter("fronds", "Fronds", p.FrondCount),
		},
	}
}

// Controls lists the HUD-adjustable fern parameters with bounds that keep
// Validate satisfied.
func Controls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "depth", Label: "Depth", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxDepth},
		{Key: "angle", Label: "Curl angle", Type: core.ParamTypeFloat, Step: 0.01, Min: -0.5, Max: 0.5},
		{Key: "growth", Label: "Growth", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 0.9},
		{Key: "fronds", Label: "Fronds", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 24},
	}
}

// Map renders the params back into FromMap's key space.
func (p Params) Map() map[string]string {
	return map[string]string{
		"depth":  strconv.Itoa(p.Depth),
		"angle":  strconv.FormatFloat(p.Angle, 'f', -1, 64),
		"growth": strconv.FormatFloat(p.Growth, 'f', -1, 64),
		"fronds": strconv.Itoa(p.FrondCount),
	}
}
