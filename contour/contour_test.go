package contour

import "testing"

type rectMask struct {
	x0, y0, x1, y1 int
}

func (r rectMask) In(x, y int) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

func TestExtractSolidRectangle(t *testing.T) {
	m := rectMask{0, 0, 4, 3}
	loops := Extract(m, 4, 3)
	if len(loops) != 1 {
		t.Fatalf("expected 1 loop, got %d", len(loops))
	}
	if len(loops[0]) != 4 {
		t.Fatalf("expected 4 corner points for a rectangle, got %d: %v", len(loops[0]), loops[0])
	}
}

func TestExtractEmptyMask(t *testing.T) {
	m := rectMask{0, 0, 0, 0}
	loops := Extract(m, 5, 5)
	if len(loops) != 0 {
		t.Fatalf("expected no loops for an empty mask, got %d", len(loops))
	}
}

func TestExtractTwoSeparateBlobs(t *testing.T) {
	m := twoBlobs{}
	loops := Extract(m, 10, 10)
	if len(loops) != 2 {
		t.Fatalf("expected 2 loops for two disjoint blobs, got %d", len(loops))
	}
}

type twoBlobs struct{}

func (twoBlobs) In(x, y int) bool {
	if x >= 0 && x < 2 && y >= 0 && y < 2 {
		return true
	}
	if x >= 5 && x < 8 && y >= 5 && y < 8 {
		return true
	}
	return false
}
