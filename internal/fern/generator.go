// Package fern generates the recursive branch geometry of a fern as a stream
// of curve segments. It never draws; callers feed the segments to a surface.
package fern

import (
	"image/color"
	"iter"
	"math"

	"fernpond/internal/core"
	rng "fernpond/pkg/core"
)

const (
	// InitialSize is the length of the first stem segment of a fern.
	InitialSize = 40.0
	// PenSize is the stroke width of a segment whose size equals its stem size.
	PenSize = 4.0
	// MinSize is the smallest segment that is still generated.
	MinSize = 0.4
	// BranchOffset is the angle between a stem and its fronds.
	BranchOffset = math.Pi / 2.5

	// anchorRatio places the curve anchor p2 at size/8 beyond p1.
	anchorRatio = 1.0 / 8
	frondShrink = 3.0

	frondJitter     = 0.1
	stemAngleJitter = 0.2
	stemSizeJitter  = 0.1

	// maxStemRun bounds consecutive stem continuations. Size jitter can hold
	// a stem near a fixed point when growth approaches 1.
	maxStemRun = 4096
)

// MaxSegments is the most segments Walk yields for one fern. Growth near 1
// multiplies the segment count without bound, so larger ferns are cut off.
const MaxSegments = 200_000

// Segment is one smooth curve through Start, Control and End.
type Segment struct {
	Start   core.Point
	Control core.Point
	End     core.Point
	Color   color.NRGBA
	Width   float64
}

// Generator produces fern segments for one set of Params.
type Generator struct {
	curl       float64
	growth     float64
	colorDepth float64
	src        rng.Source
}

// NewGenerator validates p and returns a generator drawing randomness from src.
func NewGenerator(p Params, src rng.Source) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		curl:       p.Angle,
		growth:     p.Growth,
		colorDepth: p.ColorDepth(),
		src:        src,
	}, nil
}

// Mirrored returns a generator that curls the opposite way, for drawing a
// fern reflected across a horizontal line. Both share the same source.
func (g *Generator) Mirrored() *Generator {
	m := *g
	m.curl = -g.curl
	return &m
}

// WithSource returns a copy of g that draws from src.
func (g *Generator) WithSource(src rng.Source) *Generator {
	c := *g
	c.src = src
	return &c
}

// Color returns the stroke colour for a segment at the given depth.
func (g *Generator) Color(depth int, opacity uint8) color.NRGBA {
	green := 255 - g.colorDepth*float64(depth)
	green = math.Max(0, math.Min(255, green))
	return color.NRGBA{R: 0, G: uint8(math.Round(green)), B: 0, A: opacity}
}

// StrokeWidth returns the width of a segment of the given size.
func StrokeWidth(size, stemSize float64) float64 {
	if stemSize <= 0 {
		return 0
	}
	return PenSize * size / stemSize
}

// Walk yields the segments of one fern in draw order: the segment itself,
// then frond A's subtree, frond B's subtree and the stem continuation. It
// stops after MaxSegments segments.
func (g *Generator) Walk(origin core.Point, angle, size float64, depth int, stemSize float64, opacity uint8) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		left := MaxSegments
		g.walk(origin, angle, size, depth, stemSize, opacity, 0, func(s Segment) bool {
			if left == 0 {
				return false
			}
			left--
			return yield(s)
		})
	}
}

// Segments collects Walk into a slice.
func (g *Generator) Segments(origin core.Point, angle, size float64, depth int, stemSize float64, opacity uint8) []Segment {
	var out []Segment
	for s := range g.Walk(origin, angle, size, depth, stemSize, opacity) {
		out = append(out, s)
	}
	return out
}

func (g *Generator) walk(origin core.Point, angle, size float64, depth int, stemSize float64, opacity uint8, run int, yield func(Segment) bool) bool {
	if depth < 1 || size < MinSize || run > maxStemRun {
		return true
	}
	p1 := origin.Heading(angle, size)
	p2 := p1.Heading(angle, size*anchorRatio)
	seg := Segment{
		Start:   origin,
		Control: p1,
		End:     p2,
		Color:   g.Color(depth, opacity),
		Width:   StrokeWidth(size, stemSize),
	}
	if !yield(seg) {
		return false
	}

	frond := size / frondShrink
	a := angle + (BranchOffset - g.curl + rng.Jitter(g.src, frondJitter))
	if !g.walk(p1, a, frond, depth-1, size/2, opacity, 0, yield) {
		return false
	}
	b := angle + (-BranchOffset - g.curl + rng.Jitter(g.src, frondJitter))
	if !g.walk(p2, b, frond, depth-1, size/2, opacity, 0, yield) {
		return false
	}
	stem := angle - g.curl + rng.Jitter(g.src, stemAngleJitter)
	next := size/(2-g.growth) + rng.Jitter(g.src, stemSizeJitter)
	return g.walk(p2, stem, next, depth, stemSize, opacity, run+1, yield)
}
