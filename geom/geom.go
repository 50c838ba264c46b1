// Package geom implements the 2D geometry primitives shared by the
// extraction, curve fitting, weighting and optimization stages of the
// vectorization pipeline.
package geom

import "math"

// Point is a 2D coordinate in image space: origin top-left, y
// increasing downward.
type Point struct {
	X, Y float64
}

// Pt constructs a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Rotate rotates p around the origin by radians, counter-clockwise in
// the conventional math sense (clockwise on screen, since y points
// down).
func (p Point) Rotate(radians float64) Point {
	s, c := math.Sincos(radians)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// Lerp interpolates linearly between a and b at t ∈ [0,1].
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Distance is the Euclidean length of the segment a-b.
func Distance(a, b Point) float64 {
	return a.Sub(b).Length()
}

// PerpendicularDistance is the distance from p to the infinite line
// through a and b. When a == b it falls back to the distance from p
// to a.
func PerpendicularDistance(p, a, b Point) float64 {
	A := b.Y - a.Y
	B := a.X - b.X
	C := b.X*a.Y - a.X*b.Y
	denom := math.Hypot(A, B)
	if denom == 0 {
		return Distance(p, a)
	}
	return math.Abs(A*p.X+B*p.Y+C) / denom
}

// Normal returns the unit vector perpendicular to b-a, rotated 90°
// counter-clockwise. When a == b it returns (0,1), matching the
// degenerate-tangent fallback used throughout the curve and weight
// packages.
func Normal(a, b Point) Point {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return Point{0, 1}
	}
	// Rotate (dx,dy) by +90° so the normal points to the left of
	// travel direction a->b in the y-up math convention.
	return Point{X: -d.Y / l, Y: d.X / l}
}

// Cross is the z-component of the 2D cross product (b-a) × (c-a).
func Cross(a, b, c Point) float64 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.X*ac.Y - ab.Y*ac.X
}
