package core

import "math"

// Size describes the dimensions of a drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Point is a position in canvas space. Y grows downward.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Heading returns the point at distance dist from p along angle, measured
// counter-clockwise on screen (Y up visually).
func (p Point) Heading(angle, dist float64) Point {
	return Point{X: p.X + dist*math.Cos(angle), Y: p.Y - dist*math.Sin(angle)}
}

// Rect is an axis-aligned rectangle given by its top-left corner and extent.
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point { return Point{X: r.X + r.W/2, Y: r.Y + r.H/2} }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// RectAround returns a w×h rectangle centred on c.
func RectAround(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}
