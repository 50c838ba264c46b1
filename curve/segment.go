// Package curve fits polylines to cubic Bézier curves and, optionally,
// simplifies near-circular runs of Béziers into circular arcs.
package curve

import (
	"math"

	"vectorplot.dev/geom"
)

// Kind discriminates the two shapes a Segment can take.
type Kind uint8

const (
	KindBezier Kind = iota
	KindArc
)

// Segment is a tagged variant: a cubic Bézier or a circular arc. Only
// the fields relevant to Kind are meaningful; downstream consumers
// must switch on Kind before reading either shape.
type Segment struct {
	Kind Kind

	// Bezier fields.
	Start, Control1, Control2, End geom.Point

	// Arc fields. Start and End above are shared with the arc shape.
	Center    geom.Point
	Radius    float64
	Clockwise bool
}

// Bezier constructs a cubic Bézier segment.
func Bezier(start, c1, c2, end geom.Point) Segment {
	return Segment{Kind: KindBezier, Start: start, Control1: c1, Control2: c2, End: end}
}

// Arc constructs a circular arc segment.
func Arc(start, end, center geom.Point, radius float64, clockwise bool) Segment {
	return Segment{Kind: KindArc, Start: start, End: end, Center: center, Radius: radius, Clockwise: clockwise}
}

// Evaluate samples the segment at parameter t ∈ [0,1]. For a Bezier
// this is the standard cubic Bernstein polynomial; for an Arc it
// interpolates the angle between start and end around Center,
// respecting Clockwise.
func (s Segment) Evaluate(t float64) geom.Point {
	if s.Kind == KindBezier {
		return evalCubic(s.Start, s.Control1, s.Control2, s.End, t)
	}
	return evalArc(s, t)
}

func evalCubic(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func evalArc(s Segment, t float64) geom.Point {
	startAngle := angleOf(s.Center, s.Start)
	endAngle := angleOf(s.Center, s.End)
	sweep := angularSweep(startAngle, endAngle, s.Clockwise)
	a := startAngle + sweep*t
	return geom.Point{
		X: s.Center.X + s.Radius*math.Cos(a),
		Y: s.Center.Y + s.Radius*math.Sin(a),
	}
}

func angleOf(center, p geom.Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

const twoPi = 2 * math.Pi

// angularSweep returns the signed angular distance from start to end
// that travels in the requested direction. Clockwise follows the same
// math (y-up) convention as geom and ConvertArcs' cross-product test:
// clockwise means decreasing atan2 angle, which appears
// counter-clockwise on screen since y increases downward.
func angularSweep(start, end float64, clockwise bool) float64 {
	d := math.Mod(end-start, twoPi)
	if d < 0 {
		d += twoPi
	}
	if clockwise {
		return d - twoPi
	}
	return d
}
