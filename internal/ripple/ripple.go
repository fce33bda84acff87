// Package ripple generates the shrinking, fading ellipses of a water ripple.
package ripple

import (
	"fernpond/internal/core"
	rng "fernpond/pkg/core"
)

const (
	// StrokeWidth is the outline width of every ripple ellipse.
	StrokeWidth = 2.0
	// BaseOpacity is the opacity of the outermost ellipse.
	BaseOpacity = 80

	steps = 5
)

// Ellipse is one ripple ring, centred on Center with full axes W and H.
type Ellipse struct {
	Center      core.Point
	W, H        float64
	Opacity     uint8
	StrokeWidth float64
}

// Empty reports a zero-area ring; drawing it is a no-op.
func (e Ellipse) Empty() bool { return e.W <= 0 || e.H <= 0 }

// Bounds returns the bounding box of the ring.
func (e Ellipse) Bounds() core.Rect { return core.RectAround(e.Center, e.W, e.H) }

// Generate returns the rings of one ripple, outermost first. The first ring
// is exactly w×h; each later ring is divided by, or shrunk by ten times, its
// step index and fades to BaseOpacity/i. Axes are clamped at zero.
func Generate(center core.Point, w, h float64, src rng.Source) []Ellipse {
	w, h = max(w, 0), max(h, 0)
	out := []Ellipse{{Center: center, W: w, H: h, Opacity: BaseOpacity, StrokeWidth: StrokeWidth}}
	for i := rng.Between(src, 1, steps); i < steps; i++ {
		f := float64(i)
		if src.Float64() < 0.5 {
			w, h = w/f, h/f
		} else {
			w, h = max(w-10*f, 0), max(h-10*f, 0)
		}
		out = append(out, Ellipse{
			Center:      center,
			W:           w,
			H:           h,
			Opacity:     uint8(BaseOpacity / i),
			StrokeWidth: StrokeWidth,
		})
	}
	return out
}
