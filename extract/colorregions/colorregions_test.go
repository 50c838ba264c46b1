package colorregions

import (
	"testing"

	"vectorplot.dev/raster"
)

func checkerboard(n int) *raster.Raster {
	r := raster.New(n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x/4+y/4)%2 == 0 {
				r.Set(x, y, raster.RGBA{R: 20, G: 20, B: 20, A: 255})
			} else {
				r.Set(x, y, raster.RGBA{R: 230, G: 230, B: 230, A: 255})
			}
		}
	}
	return r
}

func TestExtractRejectsInvalidRaster(t *testing.T) {
	if _, err := Extract(&raster.Raster{}, Defaults()); err == nil {
		t.Fatal("expected an error for an invalid raster")
	}
}

func TestExtractProducesBoundaries(t *testing.T) {
	r := checkerboard(16)
	opts := Defaults()
	opts.NumColors = 2
	opts.SimplifyEps = 0.5
	out, err := Extract(r, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected at least one boundary polyline")
	}
	for _, p := range out {
		if len(p) < 3 {
			t.Fatalf("expected a drawable polygon, got %d points", len(p))
		}
	}
}

func TestExtractUniformImageHasNoBoundaries(t *testing.T) {
	r := raster.New(8, 8)
	for i := range r.Pix {
		r.Pix[i] = raster.RGBA{R: 100, G: 100, B: 100, A: 255}
	}
	opts := Defaults()
	out, err := Extract(r, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A uniform image puts every pixel in one k-means cluster; its only
	// boundary is the 4-corner image border, which the 10-point minimum
	// discards.
	if len(out) != 0 {
		t.Fatalf("expected no boundaries in a uniform image, got %d", len(out))
	}
}

func TestExtractFallbackDirectly(t *testing.T) {
	// A 12x12 board's light tiles trace to loops of at most 8 corners,
	// all under the 10-point minimum; a 16x16 board yields longer loops.
	r := checkerboard(16)
	out := extractFallback(r, 0.5)
	if len(out) == 0 {
		t.Fatal("expected the fallback threshold path to find boundaries in a high-contrast image")
	}
}
