package fern

import (
	"math"
	"strconv"
	"testing"

	"fernpond/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Params)
		want error
	}{
		{"defaults", func(*Params) {}, nil},
		{"zero fronds", func(p *Params) { p.FrondCount = 0 }, nil},
		{"negative growth", func(p *Params) { p.Growth = -0.5 }, nil},
		{"growth one", func(p *Params) { p.Growth = 1 }, ErrInvalidGrowth},
		{"growth above one", func(p *Params) { p.Growth = 1.7 }, ErrInvalidGrowth},
		{"growth nan", func(p *Params) { p.Growth = math.NaN() }, ErrInvalidGrowth},
		{"growth inf", func(p *Params) { p.Growth = math.Inf(-1) }, ErrInvalidGrowth},
		{"depth zero", func(p *Params) { p.Depth = 0 }, ErrInvalidDepth},
		{"depth too deep", func(p *Params) { p.Depth = MaxDepth + 1 }, ErrInvalidDepth},
		{"angle nan", func(p *Params) { p.Angle = math.NaN() }, ErrInvalidAngle},
		{"negative fronds", func(p *Params) { p.FrondCount = -1 }, ErrInvalidFronds},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mut(&p)
			err := p.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromMap(t *testing.T) {
	p := FromMap(map[string]string{
		"depth":  "3",
		"angle":  "-0.2",
		"growth": "0.75",
		"fronds": "bogus",
	})
	assert.Equal(t, 3, p.Depth)
	assert.InDelta(t, -0.2, p.Angle, 1e-12)
	assert.InDelta(t, 0.75, p.Growth, 1e-12)
	assert.Equal(t, DefaultParams().FrondCount, p.FrondCount)

	assert.Equal(t, DefaultParams(), FromMap(nil))
}

func TestMapRoundTrip(t *testing.T) {
	p := Params{Depth: 4, Angle: 0.125, Growth: 0.5, FrondCount: 9}
	assert.Equal(t, p, FromMap(p.Map()))
}

func TestControlsKeepParamsValid(t *testing.T) {
	for _, c := range Controls() {
		p := DefaultParams()
		m := p.Map()
		for _, v := range []float64{c.Min, c.Max} {
			if c.Type == core.ParamTypeInt {
				m[c.Key] = strconv.Itoa(int(v))
			} else {
				m[c.Key] = strconv.FormatFloat(v, 'f', -1, 64)
			}
			assert.NoError(t, FromMap(m).Validate(), "%s=%v", c.Key, v)
		}
	}
}

func TestGroupListsEveryKey(t *testing.T) {
	g := DefaultParams().Group()
	keys := map[string]bool{}
	for _, p := range g.Params {
		keys[p.Key] = true
	}
	for k := range DefaultParams().Map() {
		assert.True(t, keys[k], "missing %s", k)
	}
}
