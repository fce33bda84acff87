package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"fernpond/internal/core"

	svg "github.com/ajstarks/svgo/float"
)

// SVG records each render as an SVG document. The document is buffered and
// only written to the destination on Publish.
type SVG struct {
	out io.Writer
}

// NewSVG returns an SVG backend publishing to w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{out: w}
}

// Acquire starts a new document of the given size.
func (b *SVG) Acquire(size core.Size) (Surface, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}
	s := &svgSurface{size: size, out: b.out}
	s.canvas = svg.New(&s.buf)
	s.canvas.Start(float64(size.W), float64(size.H))
	return s, nil
}

type svgSurface struct {
	size      core.Size
	buf       bytes.Buffer
	canvas    *svg.SVG
	out       io.Writer
	published bool
}

func (s *svgSurface) Size() core.Size { return s.size }

func (s *svgSurface) FillRect(r core.Rect, c color.NRGBA) {
	if r.Empty() {
		return
	}
	s.canvas.Rect(r.X, r.Y, r.W, r.H, fillStyle(c))
}

func (s *svgSurface) Curve(p0, p1, p2 core.Point, st Stroke) {
	if st.Width <= 0 {
		return
	}
	var d strings.Builder
	d.WriteString("M")
	writeCoords(&d, p0)
	for _, c := range ThroughPoints(p0, p1, p2) {
		d.WriteString(" C")
		writeCoords(&d, c.P1, c.P2, c.P3)
	}
	s.canvas.Path(d.String(), strokeStyle(st))
}

func (s *svgSurface) Line(a, b core.Point, st Stroke) {
	if st.Width <= 0 {
		return
	}
	s.canvas.Line(a.X, a.Y, b.X, b.Y, strokeStyle(st))
}

func (s *svgSurface) Ellipse(bounds core.Rect, st Stroke) {
	if bounds.Empty() || st.Width <= 0 {
		return
	}
	c := bounds.Center()
	s.canvas.Ellipse(c.X, c.Y, bounds.W/2, bounds.H/2, strokeStyle(st))
}

func (s *svgSurface) Publish() error {
	if s.published {
		return errPublished
	}
	s.published = true
	s.canvas.End()
	if _, err := s.out.Write(s.buf.Bytes()); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func f64s(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func writeCoords(b *strings.Builder, pts ...core.Point) {
	for _, p := range pts {
		b.WriteByte(' ')
		b.WriteString(f64s(p.X))
		b.WriteByte(',')
		b.WriteString(f64s(p.Y))
	}
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func fillStyle(c color.NRGBA) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%s;stroke:none", rgb(c), f64s(float64(c.A)/255))
}

func strokeStyle(st Stroke) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%s;stroke-width:%s;stroke-linecap:round",
		rgb(st.Color), f64s(float64(st.Color.A)/255), f64s(st.Width))
}

func init() {
	Register("svg", func(w io.Writer) Backend { return NewSVG(w) })
}
