package geom

import "testing"

func TestSimplifyLine(t *testing.T) {
	// A near-straight line with small wiggles should collapse to its
	// endpoints at eps=0.5.
	p := Polyline{
		Pt(0, 0), Pt(1, 0.1), Pt(2, 0), Pt(3, -0.1), Pt(10, 0),
	}
	got := Simplify(p, 0.5)
	want := Polyline{Pt(0, 0), Pt(10, 0)}
	if len(got) != len(want) || got[0] != want[0] || got[len(got)-1] != want[len(want)-1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSimplifyShortInputVerbatim(t *testing.T) {
	for _, p := range []Polyline{nil, {Pt(1, 1)}, {Pt(1, 1), Pt(2, 2)}} {
		got := Simplify(p, 0.1)
		if len(got) != len(p) {
			t.Fatalf("input of length %d should be returned verbatim, got length %d", len(p), len(got))
		}
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	p := Polyline{
		Pt(0, 0), Pt(2, 3), Pt(4, 0.2), Pt(6, -2), Pt(8, 0.1), Pt(10, 5), Pt(20, 0),
	}
	once := Simplify(p, 1.0)
	twice := Simplify(once, 1.0)
	if len(once) != len(twice) {
		t.Fatalf("not idempotent: %v vs %v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestSimplifyOutputAtLeastTwo(t *testing.T) {
	p := Polyline{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	got := Simplify(p, 1e-9)
	if len(got) < 2 {
		t.Fatalf("output length %d, want >= 2", len(got))
	}
}
