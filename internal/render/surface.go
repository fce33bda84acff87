// Package render defines the drawing surface the compositor paints on and
// provides raster, SVG and recording implementations of it.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"

	"fernpond/internal/core"
)

// MaxDimension bounds each axis of an acquired surface.
const MaxDimension = 8192

var (
	// ErrSurfaceSize reports a surface that cannot be allocated.
	ErrSurfaceSize = errors.New("render: invalid surface size")
	// ErrUnknownFormat reports an output format with no registered backend.
	ErrUnknownFormat = errors.New("render: unknown output format")
)

// Stroke describes an outline. Color.A carries the opacity.
type Stroke struct {
	Color color.NRGBA
	Width float64
}

// Surface is a drawable canvas owned by a single writer for one render.
type Surface interface {
	Size() core.Size
	// FillRect paints r with a solid colour.
	FillRect(r core.Rect, c color.NRGBA)
	// Curve strokes a smooth curve passing through p0, p1 and p2.
	Curve(p0, p1, p2 core.Point, s Stroke)
	// Line strokes a straight segment.
	Line(a, b core.Point, s Stroke)
	// Ellipse strokes the ellipse inscribed in bounds. Empty bounds draw nothing.
	Ellipse(bounds core.Rect, s Stroke)
	// Publish commits the finished image. A surface is published at most once.
	Publish() error
}

// Backend hands out surfaces.
type Backend interface {
	Acquire(size core.Size) (Surface, error)
}

// Factory constructs a Backend that publishes to w.
type Factory func(w io.Writer) Backend

var backends = map[string]Factory{}

// Register adds a backend factory under the provided format name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Formats lists registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open returns the backend registered for format, publishing to w.
func Open(format string, w io.Writer) (Backend, error) {
	f, ok := backends[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f(w), nil
}

func checkSize(size core.Size) error {
	if size.Empty() || size.W > MaxDimension || size.H > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrSurfaceSize, size.W, size.H)
	}
	return nil
}
