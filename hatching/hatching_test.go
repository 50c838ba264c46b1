package hatching

import (
	"testing"

	"vectorplot.dev/raster"
)

func darkSquare(n int) *raster.Raster {
	r := raster.New(n, n)
	for i := range r.Pix {
		r.Pix[i] = raster.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	for y := n / 4; y < 3*n/4; y++ {
		for x := n / 4; x < 3*n/4; x++ {
			r.Set(x, y, raster.RGBA{R: 10, G: 10, B: 10, A: 255})
		}
	}
	return r
}

func TestGenerateRejectsInvalidRaster(t *testing.T) {
	if _, err := Generate(&raster.Raster{}, Defaults()); err == nil {
		t.Fatal("expected an error for an invalid raster")
	}
}

func TestGenerateParallelProducesLines(t *testing.T) {
	r := darkSquare(40)
	opts := Defaults()
	opts.NumColors = 2
	out, err := Generate(r, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected hatch lines over the light area around the square")
	}
	for _, l := range out {
		if len(l) < 2 {
			t.Fatalf("expected drawable hatch segments, got length %d", len(l))
		}
	}
}

func TestGenerateCrossAddsLayers(t *testing.T) {
	r := darkSquare(40)
	opts := Defaults()
	opts.NumColors = 2
	opts.Style = Cross
	single, _ := Generate(r, func() Options { o := opts; o.Style = Parallel; return o }())
	cross, _ := Generate(r, opts)
	if len(cross) <= len(single) {
		t.Fatalf("expected cross-hatch's multiple layers to add more lines than a single parallel pass: single=%d cross=%d", len(single), len(cross))
	}
}

func TestGenerateContourProducesRings(t *testing.T) {
	r := darkSquare(60)
	opts := Defaults()
	opts.NumColors = 2
	opts.Style = Contour
	opts.Spacing = 3
	out, err := Generate(r, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected at least one contour ring")
	}
}

func TestGenerateStipplingStaysInsideMask(t *testing.T) {
	r := darkSquare(60)
	// Level 0's mask holds the pixels at or above its threshold, so
	// invert the fixture to make the square the masked region.
	for i, c := range r.Pix {
		r.Pix[i] = raster.RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: 255}
	}
	opts := Defaults()
	opts.NumColors = 2
	opts.Style = Stippling
	opts.Spacing = 4
	out, err := Generate(r, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, dot := range out {
		mid := dot[0].X + (dot[1].X-dot[0].X)/2
		if mid < float64(r.Width)/4-1 || mid > float64(r.Width)*3/4+1 {
			t.Fatalf("stipple dot fell outside the masked square: x=%v", mid)
		}
	}
}

func TestIntensityMonotonic(t *testing.T) {
	levels := 5
	prev := intensityOf(0, levels)
	for l := 1; l < levels; l++ {
		cur := intensityOf(l, levels)
		if cur > prev {
			t.Fatalf("expected non-increasing intensity as level rises, level %d: %v > %v", l, cur, prev)
		}
		prev = cur
	}
}
