package render

import (
	"image/color"
	"testing"

	"vectorplot.dev/curve"
	"vectorplot.dev/geom"
)

func TestPolylinesDrawsNonBackgroundPixels(t *testing.T) {
	opts := DefaultOptions(40, 40)
	img := Polylines([]geom.Polyline{{geom.Pt(5, 20), geom.Pt(35, 20)}}, opts)

	drawn := false
	for y := 0; y < 40 && !drawn; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y) != (color.RGBA{255, 255, 255, 255}) {
				drawn = true
				break
			}
		}
	}
	if !drawn {
		t.Fatal("expected the stroke to mark at least one non-background pixel")
	}
}

func TestCurvesKeepsCanvasSize(t *testing.T) {
	seg := curve.Bezier(geom.Pt(2, 2), geom.Pt(10, 2), geom.Pt(10, 30), geom.Pt(2, 30))
	img := Curves([]curve.Segment{seg}, DefaultOptions(40, 40))
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 40 {
		t.Fatalf("unexpected canvas size: %v", img.Bounds())
	}
}
