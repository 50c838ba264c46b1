package curve

import (
	"math"
	"testing"

	"vectorplot.dev/geom"
)

func TestBezierEndpointsExact(t *testing.T) {
	c := Bezier(geom.Pt(0, 0), geom.Pt(1, 5), geom.Pt(4, 5), geom.Pt(5, 0))
	if c.Evaluate(0) != c.Start {
		t.Fatalf("t=0 should equal start exactly, got %v", c.Evaluate(0))
	}
	if c.Evaluate(1) != c.End {
		t.Fatalf("t=1 should equal end exactly, got %v", c.Evaluate(1))
	}
}

func TestFitEndpointsPreserved(t *testing.T) {
	// Fitting must never move the original endpoints.
	points := geom.Polyline{
		geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 0), geom.Pt(3, -1), geom.Pt(4, 0),
	}
	segs := Fit(points, 0.1)
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
	if segs[0].Start != points[0] {
		t.Fatalf("first segment start = %v, want %v", segs[0].Start, points[0])
	}
	last := segs[len(segs)-1]
	if last.End != points[len(points)-1] {
		t.Fatalf("last segment end = %v, want %v", last.End, points[len(points)-1])
	}
}

func TestFitShortInput(t *testing.T) {
	if segs := Fit(geom.Polyline{geom.Pt(0, 0)}, 1.0); segs != nil {
		t.Fatalf("expected nil for a single-point input, got %v", segs)
	}
}

func TestFitContinuousChain(t *testing.T) {
	points := make(geom.Polyline, 0, 60)
	for i := 0; i < 60; i++ {
		x := float64(i)
		y := 10 * math.Sin(x/5)
		points = append(points, geom.Pt(x, y))
	}
	segs := Fit(points, 0.5)
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
	for i := 1; i < len(segs); i++ {
		if segs[i-1].End != segs[i].Start {
			t.Fatalf("segment %d doesn't connect to segment %d: %v != %v", i-1, i, segs[i-1].End, segs[i].Start)
		}
	}
}

func TestConvertArcsDetectsCircle(t *testing.T) {
	center := geom.Pt(50, 50)
	radius := 20.0
	var points geom.Polyline
	for i := 0; i <= 40; i++ {
		a := float64(i) / 40 * math.Pi / 2 // quarter circle
		points = append(points, geom.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a)))
	}
	segs := Fit(points, 0.5)
	withArcs := ConvertArcs(segs, 0.75)

	foundArc := false
	for _, s := range withArcs {
		if s.Kind != KindArc {
			continue
		}
		foundArc = true
		for i := 0; i <= 10; i++ {
			p := s.Evaluate(float64(i) / 10)
			dev := math.Abs(geom.Distance(p, s.Center) - s.Radius)
			if dev > 0.75+1e-6 {
				t.Fatalf("arc sample deviates from radius by %v", dev)
			}
		}
	}
	if !foundArc {
		t.Fatal("expected at least one Bezier to be converted to an Arc for a near-circular input")
	}
}

func TestConvertArcsKeepsBezierWhenNotCircular(t *testing.T) {
	segs := []Segment{Bezier(geom.Pt(0, 0), geom.Pt(0, 10), geom.Pt(10, 0), geom.Pt(10, 10))}
	out := ConvertArcs(segs, 0.01)
	if out[0].Kind != KindBezier {
		t.Fatalf("expected non-circular bezier to remain a Bezier, got %v", out[0].Kind)
	}
}
