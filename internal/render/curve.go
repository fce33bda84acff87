package render

import "fernpond/internal/core"

// curveTension matches the default cardinal spline of common 2D APIs.
const curveTension = 0.5

// Cubic is a cubic Bézier from P0 to P3 with control points P1 and P2.
type Cubic struct {
	P0, P1, P2, P3 core.Point
}

// At evaluates the curve at t in [0, 1].
func (c Cubic) At(t float64) core.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return core.Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// ThroughPoints converts the cardinal spline through p0, p1 and p2 into two
// cubic Béziers. The end points act as their own outer neighbours.
func ThroughPoints(p0, p1, p2 core.Point) [2]Cubic {
	k := curveTension / 3
	t0 := p1.Sub(p0).Mul(k)
	t1 := p2.Sub(p0).Mul(k)
	t2 := p2.Sub(p1).Mul(k)
	return [2]Cubic{
		{P0: p0, P1: p0.Add(t0), P2: p1.Sub(t1), P3: p1},
		{P0: p1, P1: p1.Add(t1), P2: p2.Sub(t2), P3: p2},
	}
}
