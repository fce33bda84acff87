package scene

import (
	"testing"

	"fernpond/internal/core"
	"fernpond/internal/fern"
	"fernpond/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScene() *Scene {
	return New(Config{Size: canvas, Seed: 42, Params: smallParams()}, nil)
}

func TestSceneRendersSameImageForSameSeed(t *testing.T) {
	s := newScene()
	rec := render.NewRecorder()
	require.NoError(t, s.Render(rec))
	require.NoError(t, s.Render(rec))
	require.Len(t, rec.Published(), 2)
	assert.Equal(t, rec.Published()[0], rec.Published()[1])
	assert.Equal(t, rec.Count(render.OpCurve), s.LastStats().Segments)

	s.Reseed(43)
	require.NoError(t, s.Render(rec))
	assert.NotEqual(t, rec.Published()[0], rec.Last())
}

func TestSceneSetters(t *testing.T) {
	s := newScene()

	assert.True(t, s.SetIntParameter("depth", 4))
	assert.Equal(t, 4, s.Params().Depth)
	assert.False(t, s.SetIntParameter("depth", 4), "unchanged value")
	assert.False(t, s.SetIntParameter("depth", 0))
	assert.False(t, s.SetIntParameter("depth", fern.MaxDepth+1))
	assert.Equal(t, 4, s.Params().Depth)

	assert.True(t, s.SetFloatParameter("growth", 0.5))
	assert.InDelta(t, 0.5, s.Params().Growth, 1e-12)
	assert.False(t, s.SetFloatParameter("growth", 1))
	assert.InDelta(t, 0.5, s.Params().Growth, 1e-12)

	assert.True(t, s.SetIntParameter("fronds", 0))
	assert.False(t, s.SetIntParameter("fronds", -1))
	assert.False(t, s.SetIntParameter("unknown", 3))
}

func TestSceneParameters(t *testing.T) {
	s := newScene()
	snap := s.Parameters()

	seed, ok := snap.Lookup("seed")
	require.True(t, ok)
	assert.Equal(t, "42", seed.Value)

	growth, ok := snap.Lookup("growth")
	require.True(t, ok)
	assert.Equal(t, core.ParamTypeFloat, growth.Type)
	assert.Equal(t, "0.3", growth.Value)

	for _, c := range s.ParameterControls() {
		_, ok := snap.Lookup(c.Key)
		assert.True(t, ok, "control %s has no value", c.Key)
	}
}

func TestSceneRenderErrorKeepsStats(t *testing.T) {
	s := newScene()
	rec := render.NewRecorder()
	require.NoError(t, s.Render(rec))
	before := s.LastStats()

	bad := New(Config{Size: core.Size{}, Seed: 1, Params: smallParams()}, nil)
	require.Error(t, bad.Render(rec))
	assert.Equal(t, Stats{}, bad.LastStats())
	assert.Equal(t, before, s.LastStats())
}
