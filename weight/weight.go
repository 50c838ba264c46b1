// Package weight simulates variable line weight on a pen plotter,
// which can only draw constant-width strokes, by emitting multiple
// offset copies of a centerline polyline.
package weight

import (
	"math"

	"vectorplot.dev/geom"
)

// Style selects how a weighted centerline is expanded into multiple
// strokes.
type Style uint8

const (
	Parallel Style = iota
	Outline
	Scribble
	Zigzag
)

// Path is a centerline annotated with a drawing weight: 1.0 is
// neutral, >1 thick, <1 thin.
type Path struct {
	Centerline geom.Polyline
	Weight     float64
	Style      Style
}

// Thickness converts a weight > 1.0 into the thickness used by the
// style generators.
func Thickness(weight float64) float64 {
	return (weight - 1) * 2
}

// Generate expands wp into one or more drawable polylines. Weights at
// or below 1.0 pass the centerline through unchanged: the multi-line
// simulation only kicks in for weight > 1.0.
func Generate(wp Path) []geom.Polyline {
	if wp.Weight <= 1.0 || len(wp.Centerline) < 2 {
		return []geom.Polyline{wp.Centerline}
	}
	thickness := Thickness(wp.Weight)
	switch wp.Style {
	case Outline:
		return outline(wp.Centerline, thickness)
	case Scribble:
		return scribble(wp.Centerline, thickness)
	case Zigzag:
		return zigzag(wp.Centerline, thickness)
	default:
		return parallel(wp.Centerline, wp.Weight, thickness)
	}
}

// Offset translates every vertex of p along its local unit normal by
// offset. End vertices use the adjacent edge's normal; interior
// vertices average the two adjacent edge normals and renormalize
// (falling back to the first edge's normal if the average cancels
// out). Offsets with |offset| < 0.1 return p unchanged.
func Offset(p geom.Polyline, offset float64) geom.Polyline {
	if math.Abs(offset) < 0.1 || len(p) == 0 {
		return p.Clone()
	}
	out := make(geom.Polyline, len(p))
	for i := range p {
		var n geom.Point
		switch {
		case len(p) == 1:
			n = geom.Point{0, 1}
		case i == 0:
			n = geom.Normal(p[0], p[1])
		case i == len(p)-1:
			n = geom.Normal(p[i-1], p[i])
		default:
			n1 := geom.Normal(p[i-1], p[i])
			n2 := geom.Normal(p[i], p[i+1])
			sum := n1.Add(n2)
			if l := sum.Length(); l > 1e-9 {
				n = sum.Scale(1 / l)
			} else {
				n = n1
			}
		}
		out[i] = p[i].Add(n.Scale(offset))
	}
	return out
}

// trimEnds removes frac of the polyline's arc length symmetrically
// from both ends, interpolating new endpoints rather than simply
// dropping vertices.
func trimEnds(p geom.Polyline, frac float64) geom.Polyline {
	if len(p) < 2 || frac <= 0 {
		return p.Clone()
	}
	total := p.Length()
	if total == 0 {
		return p.Clone()
	}
	trim := total * frac
	return sliceByArcLength(p, trim, total-trim)
}

// sliceByArcLength returns the portion of p between arc-length
// positions from and to (0 <= from < to <= p.Length()).
func sliceByArcLength(p geom.Polyline, from, to float64) geom.Polyline {
	if from >= to {
		mid := p.Length() / 2
		from, to = mid, mid
	}
	var out geom.Polyline
	acc := 0.0
	for i := 1; i < len(p); i++ {
		segStart, segEnd := p[i-1], p[i]
		segLen := geom.Distance(segStart, segEnd)
		segFrom, segTo := acc, acc+segLen
		acc = segTo
		if segTo < from || segFrom > to {
			continue
		}
		lo := math.Max(from, segFrom)
		hi := math.Min(to, segTo)
		if segLen == 0 {
			continue
		}
		a := geom.Lerp(segStart, segEnd, (lo-segFrom)/segLen)
		b := geom.Lerp(segStart, segEnd, (hi-segFrom)/segLen)
		if len(out) == 0 {
			out = append(out, a)
		}
		out = append(out, b)
	}
	if len(out) < 2 {
		return geom.Polyline{p.Start(), p.End()}
	}
	return out
}
