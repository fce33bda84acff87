package render

import (
	"errors"
	"image"
	"image/color"
	"io"

	"fernpond/internal/core"

	"github.com/fogleman/gg"
)

var errPublished = errors.New("render: surface already published")

// Raster allocates anti-aliased pixel surfaces and hands each finished
// context to a publish func.
type Raster struct {
	publish func(*gg.Context) error
}

// NewRaster returns a raster backend publishing to sink. The image holds
// premultiplied pixels and is owned by the sink.
func NewRaster(sink func(*image.RGBA) error) *Raster {
	if sink == nil {
		return &Raster{}
	}
	return &Raster{publish: func(dc *gg.Context) error {
		return sink(dc.Image().(*image.RGBA))
	}}
}

// NewPNG returns a raster backend that encodes published images as PNG to w.
func NewPNG(w io.Writer) *Raster {
	return &Raster{publish: func(dc *gg.Context) error {
		return dc.EncodePNG(w)
	}}
}

// Acquire allocates a transparent surface of the given size.
func (r *Raster) Acquire(size core.Size) (Surface, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return &rasterSurface{size: size, dc: gg.NewContext(size.W, size.H), publish: r.publish}, nil
}

type rasterSurface struct {
	size      core.Size
	dc        *gg.Context
	publish   func(*gg.Context) error
	published bool
}

func (s *rasterSurface) Size() core.Size { return s.size }

func (s *rasterSurface) FillRect(r core.Rect, c color.NRGBA) {
	if r.Empty() {
		return
	}
	s.dc.SetColor(c)
	s.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	s.dc.Fill()
}

func (s *rasterSurface) Curve(p0, p1, p2 core.Point, st Stroke) {
	if st.Width <= 0 {
		return
	}
	parts := ThroughPoints(p0, p1, p2)
	s.dc.MoveTo(p0.X, p0.Y)
	for _, c := range parts {
		s.dc.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	}
	s.stroke(st)
}

func (s *rasterSurface) Line(a, b core.Point, st Stroke) {
	if st.Width <= 0 {
		return
	}
	s.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	s.stroke(st)
}

func (s *rasterSurface) Ellipse(bounds core.Rect, st Stroke) {
	if bounds.Empty() || st.Width <= 0 {
		return
	}
	c := bounds.Center()
	s.dc.DrawEllipse(c.X, c.Y, bounds.W/2, bounds.H/2)
	s.stroke(st)
}

func (s *rasterSurface) stroke(st Stroke) {
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.SetLineCap(gg.LineCapRound)
	s.dc.Stroke()
}

func (s *rasterSurface) Publish() error {
	if s.published {
		return errPublished
	}
	s.published = true
	if s.publish == nil {
		return nil
	}
	return s.publish(s.dc)
}

func init() {
	Register("png", func(w io.Writer) Backend { return NewPNG(w) })
}
