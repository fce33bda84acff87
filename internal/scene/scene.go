package scene

import (
	"strconv"

	"fernpond/internal/core"
	"fernpond/internal/fern"
	"fernpond/internal/render"
	rng "fernpond/pkg/core"
)

// Config controls a Scene.
type Config struct {
	Size   core.Size
	Seed   int64
	Params fern.Params
}

// Scene is the tunable state behind the viewer. Every render starts from a
// fresh RNG seeded with Seed, so equal settings give equal images.
type Scene struct {
	cfg  Config
	comp *Compositor
	last Stats
}

var _ core.ParameterEditor = (*Scene)(nil)

// New returns a scene rendering with comp.
func New(cfg Config, comp *Compositor) *Scene {
	if comp == nil {
		comp = NewCompositor()
	}
	return &Scene{cfg: cfg, comp: comp}
}

// Name identifies the scene.
func (s *Scene) Name() string { return "fern pond" }

// Size returns the surface dimensions.
func (s *Scene) Size() core.Size { return s.cfg.Size }

// Params returns the current fern parameters.
func (s *Scene) Params() fern.Params { return s.cfg.Params }

// Seed returns the seed used by the next render.
func (s *Scene) Seed() int64 { return s.cfg.Seed }

// LastStats reports the most recent successful render.
func (s *Scene) LastStats() Stats { return s.last }

// Reseed changes the seed used by subsequent renders.
func (s *Scene) Reseed(seed int64) { s.cfg.Seed = seed }

// Render draws the scene with the current settings.
func (s *Scene) Render(b render.Backend) error {
	stats, err := s.comp.Render(b, s.cfg.Size, s.cfg.Params, rng.NewRNG(s.cfg.Seed))
	if err != nil {
		return err
	}
	s.last = stats
	return nil
}

// Parameters reports the settings of the scene.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				core.IntParameter("w", "Width", s.cfg.Size.W),
				core.IntParameter("h", "Height", s.cfg.Size.H),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
			},
		},
		s.cfg.Params.Group(),
	}}
}

// ParameterControls lists the adjustable fern parameters.
func (s *Scene) ParameterControls() []core.ParameterControl { return fern.Controls() }

// SetIntParameter updates an integer fern parameter. Values that would not
// validate are refused.
func (s *Scene) SetIntParameter(key string, value int) bool {
	return s.set(key, strconv.Itoa(value))
}

// SetFloatParameter updates a floating point fern parameter. Values that would
// not validate are refused.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (s *Scene) set(key, value string) bool {
	m := s.cfg.Params.Map()
	if _, ok := m[key]; !ok {
		return false
	}
	m[key] = value
	next := fern.FromMap(m)
	if next == s.cfg.Params || next.Validate() != nil {
		return false
	}
	s.cfg.Params = next
	return true
}
