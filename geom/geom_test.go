package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Pt(0, 0), Pt(3, 4))
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("got %v, want 5", d)
	}
}

func TestPerpendicularDistance(t *testing.T) {
	d := PerpendicularDistance(Pt(0, 5), Pt(-10, 0), Pt(10, 0))
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("got %v, want 5", d)
	}
}

func TestPerpendicularDistanceDegenerateLine(t *testing.T) {
	d := PerpendicularDistance(Pt(3, 4), Pt(1, 1), Pt(1, 1))
	if math.Abs(d-Distance(Pt(3, 4), Pt(1, 1))) > 1e-9 {
		t.Fatalf("degenerate line should fall back to point distance, got %v", d)
	}
}

func TestNormalDegenerate(t *testing.T) {
	n := Normal(Pt(2, 2), Pt(2, 2))
	if n != (Point{0, 1}) {
		t.Fatalf("got %v, want (0,1)", n)
	}
}

func TestNormalUnitLength(t *testing.T) {
	n := Normal(Pt(0, 0), Pt(5, 0))
	if math.Abs(n.Length()-1) > 1e-9 {
		t.Fatalf("normal not unit length: %v", n)
	}
	if math.Abs(n.Dot(Pt(5, 0))) > 1e-9 {
		t.Fatalf("normal not perpendicular: %v", n)
	}
}
