package raster

import "testing"

func TestValid(t *testing.T) {
	r := New(4, 3)
	if err := r.Valid(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Width = 0
	if err := r.Valid(); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestGray(t *testing.T) {
	r := New(1, 1)
	r.Set(0, 0, RGBA{R: 255, G: 0, B: 0, A: 255})
	if g := r.Gray(0, 0); g != 85 {
		t.Fatalf("got %v, want 85", g)
	}
}

func TestMaskBounds(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(1, 1)
	if !m.In(1, 1) {
		t.Fatal("expected (1,1) to be inside")
	}
	if m.In(5, 5) {
		t.Fatal("out of bounds should be outside")
	}
}

func TestLabelMask(t *testing.T) {
	labels := []int{0, 1, 1, 0}
	m := LabelMask(2, 2, labels, 1)
	if !m.In(1, 0) || !m.In(0, 1) {
		t.Fatal("label-1 pixels should be inside")
	}
	if m.In(0, 0) || m.In(1, 1) {
		t.Fatal("label-0 pixels should be outside")
	}
}
