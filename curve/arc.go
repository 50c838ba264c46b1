package curve

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"vectorplot.dev/geom"
)

const arcSamples = 11

// ConvertArcs is the optional post-pass that simplifies near-circular
// Bézier segments into Arc segments. For each Bezier, it samples 11
// points along the curve, fits a circle to them by algebraic
// least-squares (Kåsa's method), and replaces the segment with an Arc
// if the maximum radial deviation from that circle is within
// tolerance. Degenerate fits (a near-singular normal-equations matrix)
// and fits exceeding tolerance both keep the original Bezier.
func ConvertArcs(segments []Segment, tolerance float64) []Segment {
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if s.Kind != KindBezier {
			out[i] = s
			continue
		}
		if arc, ok := fitArc(s, tolerance); ok {
			out[i] = arc
		} else {
			out[i] = s
		}
	}
	return out
}

func fitArc(s Segment, tolerance float64) (Segment, bool) {
	samples := make([]geom.Point, arcSamples)
	for i := range samples {
		t := float64(i) / float64(arcSamples-1)
		samples[i] = s.Evaluate(t)
	}

	center, radius, ok := fitCircle(samples)
	if !ok {
		return Segment{}, false
	}

	maxDev := 0.0
	for _, p := range samples {
		dev := math.Abs(geom.Distance(p, center) - radius)
		if dev > maxDev {
			maxDev = dev
		}
	}
	if maxDev > tolerance {
		return Segment{}, false
	}

	mid := samples[arcSamples/2]
	clockwise := geom.Cross(s.Start, mid, s.End) < 0
	return Arc(s.Start, s.End, center, radius, clockwise), true
}

// fitCircle solves the algebraic least-squares circle fit: for each
// point (x,y), x²+y²+Dx+Ey+F=0. The normal equations (AᵀA)v = Aᵀb are
// solved for v=(D,E,F); a near-singular AᵀA (|det| < 1e-10) is treated
// as a numeric degeneracy and reported as !ok, per the fallback policy
// of keeping the original Bezier.
func fitCircle(points []geom.Point) (center geom.Point, radius float64, ok bool) {
	n := len(points)
	a := mat.NewDense(n, 3, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range points {
		a.SetRow(i, []float64{p.X, p.Y, 1})
		b.SetVec(i, -(p.X*p.X + p.Y*p.Y))
	}

	var ata mat.Dense
	ata.Mul(a.T(), a)
	if math.Abs(mat.Det(&ata)) < 1e-10 {
		return geom.Point{}, 0, false
	}

	var atb mat.VecDense
	atb.MulVec(a.T(), b)

	var v mat.VecDense
	if err := v.SolveVec(&ata, &atb); err != nil {
		return geom.Point{}, 0, false
	}

	D, E, F := v.AtVec(0), v.AtVec(1), v.AtVec(2)
	cx, cy := -D/2, -E/2
	r2 := cx*cx + cy*cy - F
	if r2 <= 0 {
		return geom.Point{}, 0, false
	}
	return geom.Point{X: cx, Y: cy}, math.Sqrt(r2), true
}
