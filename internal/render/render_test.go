package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"fernpond/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opaqueRed = color.NRGBA{R: 255, A: 255}

func TestThroughPointsPassesThroughAllPoints(t *testing.T) {
	p0, p1, p2 := core.Pt(0, 0), core.Pt(40, -10), core.Pt(45, -12)
	parts := ThroughPoints(p0, p1, p2)
	assert.Equal(t, p0, parts[0].At(0))
	assert.InDelta(t, p1.X, parts[0].At(1).X, 1e-9)
	assert.InDelta(t, p1.Y, parts[0].At(1).Y, 1e-9)
	assert.Equal(t, p1, parts[1].P0)
	assert.InDelta(t, p2.X, parts[1].At(1).X, 1e-9)
	assert.InDelta(t, p2.Y, parts[1].At(1).Y, 1e-9)
}

func TestThroughPointsSmoothAtMiddle(t *testing.T) {
	parts := ThroughPoints(core.Pt(0, 0), core.Pt(10, 5), core.Pt(30, 0))
	in := parts[0].P3.Sub(parts[0].P2)
	out := parts[1].P1.Sub(parts[1].P0)
	// Tangents on both sides of p1 are equal.
	assert.InDelta(t, in.X, out.X, 1e-12)
	assert.InDelta(t, in.Y, out.Y, 1e-12)
}

func TestCollinearCurveStaysOnLine(t *testing.T) {
	parts := ThroughPoints(core.Pt(0, 0), core.Pt(40, 0), core.Pt(45, 0))
	for _, c := range parts {
		for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
			assert.InDelta(t, 0, c.At(tt).Y, 1e-12)
		}
	}
}

func TestAcquireRejectsBadSizes(t *testing.T) {
	backends := map[string]Backend{
		"raster":   NewRaster(nil),
		"svg":      NewSVG(&bytes.Buffer{}),
		"recorder": NewRecorder(),
	}
	for name, b := range backends {
		for _, size := range []core.Size{{W: 0, H: 10}, {W: 10, H: -1}, {W: MaxDimension + 1, H: 1}} {
			_, err := b.Acquire(size)
			assert.ErrorIs(t, err, ErrSurfaceSize, "%s %v", name, size)
		}
	}
}

func TestRasterPublishesPixels(t *testing.T) {
	var got *image.RGBA
	b := NewRaster(func(img *image.RGBA) error {
		got = img
		return nil
	})
	s, err := b.Acquire(core.Size{W: 40, H: 30})
	require.NoError(t, err)

	s.FillRect(core.Rect{W: 40, H: 30}, color.NRGBA{B: 200, A: 255})
	s.Line(core.Pt(0, 15), core.Pt(40, 15), Stroke{Color: opaqueRed, Width: 4})
	s.Ellipse(core.Rect{}, Stroke{Color: opaqueRed, Width: 2})
	require.Nil(t, got, "nothing is visible before publish")

	require.NoError(t, s.Publish())
	require.NotNil(t, got)
	assert.Equal(t, 40, got.Bounds().Dx())
	assert.Equal(t, color.RGBA{B: 200, A: 255}, got.RGBAAt(5, 2))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, got.RGBAAt(20, 15))

	assert.Error(t, s.Publish())
}

func TestOpenPNG(t *testing.T) {
	var buf bytes.Buffer
	b, err := Open("png", &buf)
	require.NoError(t, err)
	s, err := b.Acquire(core.Size{W: 8, H: 8})
	require.NoError(t, err)
	s.FillRect(core.Rect{W: 8, H: 8}, opaqueRed)
	s.Curve(core.Pt(0, 0), core.Pt(4, 4), core.Pt(8, 4), Stroke{Color: color.NRGBA{G: 255, A: 128}, Width: 1})
	assert.Zero(t, buf.Len())
	require.NoError(t, s.Publish())

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestOpenUnknownFormat(t *testing.T) {
	_, err := Open("gif", &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, Formats(), "png")
	assert.Contains(t, Formats(), "svg")
}

func TestSVGBufferedUntilPublish(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSVG(&buf).Acquire(core.Size{W: 100, H: 50})
	require.NoError(t, err)

	s.FillRect(core.Rect{W: 100, H: 50}, color.NRGBA{R: 8, G: 18, B: 32, A: 255})
	s.Curve(core.Pt(0, 0), core.Pt(40, 0), core.Pt(45, 0), Stroke{Color: color.NRGBA{G: 85, A: 255}, Width: 4})
	s.Line(core.Pt(50, 10), core.Pt(50, 40), Stroke{Color: opaqueRed, Width: 4})
	s.Ellipse(core.Rect{X: 10, Y: 10, W: 20, H: 6}, Stroke{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 80}, Width: 2})
	s.Ellipse(core.Rect{X: 10, Y: 10, W: 0, H: 6}, Stroke{Color: opaqueRed, Width: 2})
	assert.Zero(t, buf.Len())

	require.NoError(t, s.Publish())
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "M 0.000,0.000 C")
	assert.Contains(t, out, "stroke:rgb(0,85,0)")
	assert.Equal(t, 1, strings.Count(out, "<ellipse"))
	assert.Equal(t, 1, strings.Count(out, "<line"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGPublishError(t *testing.T) {
	s, err := NewSVG(failingWriter{}).Acquire(core.Size{W: 10, H: 10})
	require.NoError(t, err)
	assert.ErrorContains(t, s.Publish(), "disk full")
}

func TestRecorderKeepsOrder(t *testing.T) {
	r := NewRecorder()
	s, err := r.Acquire(core.Size{W: 10, H: 10})
	require.NoError(t, err)
	s.FillRect(core.Rect{W: 10, H: 10}, opaqueRed)
	s.Curve(core.Pt(0, 0), core.Pt(1, 1), core.Pt(2, 2), Stroke{Width: 1})
	s.Ellipse(core.Rect{W: 0, H: 3}, Stroke{Width: 1})
	s.Line(core.Pt(0, 0), core.Pt(5, 5), Stroke{Width: 1})
	assert.Empty(t, r.Published())

	require.NoError(t, s.Publish())
	kinds := []OpKind{}
	for _, op := range r.Last() {
		kinds = append(kinds, op.Kind)
	}
	assert.Equal(t, []OpKind{OpFill, OpCurve, OpLine}, kinds)
	assert.Equal(t, 1, r.Count(OpCurve))
	assert.Equal(t, "curve", OpCurve.String())
}

func TestPNGKeepsTranslucentColor(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewPNG(&buf).Acquire(core.Size{W: 4, H: 4})
	require.NoError(t, err)
	s.FillRect(core.Rect{W: 4, H: 4}, color.NRGBA{G: 255, A: 128})
	require.NoError(t, s.Publish())

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	c := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)
	assert.InDelta(t, 255, int(c.G), 1)
	assert.InDelta(t, 128, int(c.A), 1)
	assert.Zero(t, c.R)
}
