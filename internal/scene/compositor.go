// Package scene composes ferns, their reflection and ripples onto a surface.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"fernpond/internal/core"
	"fernpond/internal/fern"
	"fernpond/internal/render"
	"fernpond/internal/ripple"
	rng "fernpond/pkg/core"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	mainOpacity       = 255
	reflectionOpacity = 90

	minRipples = 2
	maxRipples = 8

	rippleMinWidth  = 30
	rippleWidthSpan = 60
	stemRippleW     = 60.0
	stemRippleH     = 20.0

	streamBuffer = 256
)

var (
	background = color.NRGBA{R: 8, G: 18, B: 32, A: 255}
	stemColor  = color.NRGBA{R: 0, G: 70, B: 0, A: 255}
	rippleTint = color.NRGBA{R: 255, G: 255, B: 255}
)

// Layout holds the anchor points of a scene.
type Layout struct {
	// Center is where the main ferns radiate from.
	Center core.Point
	// Water is the stem base on the water line.
	Water core.Point
	// Reflection is Center mirrored across the water line.
	Reflection core.Point
}

// LayoutFor places the anchors for a surface of the given size.
func LayoutFor(size core.Size) Layout {
	w, h := float64(size.W), float64(size.H)
	return Layout{
		Center:     core.Pt(w/2, 0.4*h),
		Water:      core.Pt(w/2, 0.6*h),
		Reflection: core.Pt(w/2, 0.8*h),
	}
}

// FrondAngle returns the direction of frond i out of n, fanned across the
// upper half plane.
func FrondAngle(i, n int) float64 {
	return math.Pi * float64(i+1) / float64(n+1)
}

// Stats summarises one render.
type Stats struct {
	Segments       int
	Ellipses       int
	SkippedRipples int
	// Truncated counts ferns cut off at fern.MaxSegments.
	Truncated      int
	Elapsed        time.Duration
}

// Compositor owns the surface lifecycle of a render.
type Compositor struct {
	log     zerolog.Logger
	workers int
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithLogger sets the logger used for render summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Compositor) { c.log = l }
}

// WithWorkers enables concurrent fern generation with up to n goroutines.
// It takes effect only for sources that implement rng.Splitter.
func WithWorkers(n int) Option {
	return func(c *Compositor) { c.workers = n }
}

// NewCompositor returns a compositor with the given options applied.
func NewCompositor(opts ...Option) *Compositor {
	c := &Compositor{log: zerolog.Nop(), workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fernJob is one fern instance in canonical draw order.
type fernJob struct {
	gen     *fern.Generator
	origin  core.Point
	angle   float64
	opacity uint8
}

// Render draws one complete scene on a surface acquired from b and publishes
// it. Params are validated before the surface is acquired; on any error the
// surface is dropped unpublished.
func (c *Compositor) Render(b render.Backend, size core.Size, p fern.Params, src rng.Source) (Stats, error) {
	start := time.Now()
	gen, err := fern.NewGenerator(p, src)
	if err != nil {
		return Stats{}, err
	}
	surface, err := b.Acquire(size)
	if err != nil {
		return Stats{}, fmt.Errorf("acquire surface: %w", err)
	}

	layout := LayoutFor(size)
	reflected := make([]fernJob, p.FrondCount)
	main := make([]fernJob, p.FrondCount)
	mirror := gen.Mirrored()
	for i := range p.FrondCount {
		angle := FrondAngle(i, p.FrondCount)
		reflected[i] = fernJob{gen: mirror, origin: layout.Reflection, angle: -angle, opacity: reflectionOpacity}
		main[i] = fernJob{gen: gen, origin: layout.Center, angle: angle, opacity: mainOpacity}
	}

	var stats Stats
	splitter, parallel := src.(rng.Splitter)
	parallel = parallel && c.workers > 1 && p.FrondCount > 0

	var (
		streams []chan fern.Segment
		wait    func() error
	)
	if parallel {
		streams, wait = c.generate(append(append([]fernJob{}, reflected...), main...), p.Depth, splitter)
	}
	drawFern := func(i int, job fernJob) {
		var n int
		if parallel {
			n = drawStream(surface, streams[i])
		} else {
			n = drawWalk(surface, job, p.Depth)
		}
		stats.Segments += n
		if n >= fern.MaxSegments {
			stats.Truncated++
		}
	}

	surface.FillRect(core.Rect{W: float64(size.W), H: float64(size.H)}, background)

	for i, job := range reflected {
		drawFern(i, job)
	}

	count := rng.Between(src, minRipples, maxRipples+1)
	for range count {
		center := core.Pt(
			src.Float64()*float64(size.W),
			layout.Water.Y+src.Float64()*(float64(size.H)-layout.Water.Y),
		)
		w := float64(rng.Between(src, rippleMinWidth, rippleMinWidth+rippleWidthSpan))
		drawn, skipped := drawRipple(surface, ripple.Generate(center, w, w/3, src))
		stats.Ellipses += drawn
		stats.SkippedRipples += skipped
	}
	drawn, skipped := drawRipple(surface, ripple.Generate(layout.Water, stemRippleW, stemRippleH, src))
	stats.Ellipses += drawn
	stats.SkippedRipples += skipped

	if p.FrondCount > 0 {
		surface.Line(layout.Center, layout.Reflection, render.Stroke{Color: stemColor, Width: fern.PenSize})
	}
	for i, job := range main {
		drawFern(len(reflected)+i, job)
	}
	if parallel {
		if err := wait(); err != nil {
			return Stats{}, err
		}
	}
	if stats.Truncated > 0 {
		c.log.Warn().
			Int("ferns", stats.Truncated).
			Int("max_segments", fern.MaxSegments).
			Float64("growth", p.Growth).
			Msg("fern segment budget reached, ferns cut off")
	}

	if err := surface.Publish(); err != nil {
		return Stats{}, fmt.Errorf("publish surface: %w", err)
	}
	stats.Elapsed = time.Since(start)
	c.log.Debug().
		Int("segments", stats.Segments).
		Int("ellipses", stats.Ellipses).
		Int("skipped_ripples", stats.SkippedRipples).
		Int("truncated", stats.Truncated).
		Dur("elapsed", stats.Elapsed).
		Bool("parallel", parallel).
		Msg("scene rendered")
	return stats, nil
}

// generate starts producing the segments of every job concurrently. Each job
// draws from its own stream, split from root in job order, and sends its
// segments on its own channel, so draining the channels in job order gives a
// result that does not depend on scheduling. Every channel must be drained
// before calling the returned wait.
func (c *Compositor) generate(jobs []fernJob, depth int, root rng.Splitter) ([]chan fern.Segment, func() error) {
	out := make([]chan fern.Segment, len(jobs))
	gens := make([]*fern.Generator, len(jobs))
	for i, job := range jobs {
		out[i] = make(chan fern.Segment, streamBuffer)
		gens[i] = job.gen.WithSource(root.Split())
	}
	g := new(errgroup.Group)
	g.SetLimit(c.workers)
	launched := make(chan struct{})
	// Go blocks at the limit, and running jobs block until drained, so
	// jobs are launched off the drawing goroutine.
	go func() {
		defer close(launched)
		for i, job := range jobs {
			g.Go(func() error {
				defer close(out[i])
				for seg := range gens[i].Walk(job.origin, job.angle, fern.InitialSize, depth, fern.InitialSize, job.opacity) {
					out[i] <- seg
				}
				return nil
			})
		}
	}()
	return out, func() error {
		<-launched
		return g.Wait()
	}
}

func drawWalk(s render.Surface, job fernJob, depth int) int {
	n := 0
	for seg := range job.gen.Walk(job.origin, job.angle, fern.InitialSize, depth, fern.InitialSize, job.opacity) {
		drawSegment(s, seg)
		n++
	}
	return n
}

func drawStream(s render.Surface, segs <-chan fern.Segment) int {
	n := 0
	for seg := range segs {
		drawSegment(s, seg)
		n++
	}
	return n
}

func drawSegment(s render.Surface, seg fern.Segment) {
	s.Curve(seg.Start, seg.Control, seg.End, render.Stroke{Color: seg.Color, Width: seg.Width})
}

func drawRipple(s render.Surface, rings []ripple.Ellipse) (drawn, skipped int) {
	for _, e := range rings {
		if e.Empty() {
			skipped++
			continue
		}
		tint := rippleTint
		tint.A = e.Opacity
		s.Ellipse(e.Bounds(), render.Stroke{Color: tint, Width: e.StrokeWidth})
		drawn++
	}
	return drawn, skipped
}
