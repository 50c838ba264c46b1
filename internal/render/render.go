// Package render rasterizes pipeline output (polylines and fitted
// curve segments) to an image for debugging, tests and cmd/vecdemo, in
// the same rasterx-based style the engraving package uses to drive a
// physical plotter.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"vectorplot.dev/curve"
	"vectorplot.dev/geom"
)

// Options configures the debug raster.
type Options struct {
	Width, Height int
	StrokeWidth   int // whole pixels (converted with fixed.I), default 2
	Background    color.Color
	Stroke        color.Color
}

// DefaultOptions returns black-on-white debug rendering defaults.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:       width,
		Height:      height,
		StrokeWidth: 2,
		Background:  color.White,
		Stroke:      color.Black,
	}
}

// Polylines rasterizes paths into a fresh RGBA image.
func Polylines(paths []geom.Polyline, opts Options) *image.RGBA {
	img := newCanvas(opts)
	scanner := rasterx.NewScannerGV(opts.Width, opts.Height, img, img.Bounds())
	dasher := rasterx.NewDasher(opts.Width, opts.Height, scanner)
	dasher.SetStroke(fixed.I(opts.StrokeWidth), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(opts.Stroke)

	for _, p := range paths {
		if len(p) < 2 {
			continue
		}
		dasher.Start(toFixed(p[0]))
		for _, pt := range p[1:] {
			dasher.Line(toFixed(pt))
		}
		dasher.Stop(false)
	}
	dasher.Draw()
	return img
}

// Curves samples every segment at a fixed resolution and rasterizes
// the resulting polylines, reusing Polylines.
func Curves(segments []curve.Segment, opts Options) *image.RGBA {
	const samplesPerSegment = 16
	var paths []geom.Polyline
	for _, s := range segments {
		p := make(geom.Polyline, 0, samplesPerSegment+1)
		for i := 0; i <= samplesPerSegment; i++ {
			t := float64(i) / float64(samplesPerSegment)
			p = append(p, s.Evaluate(t))
		}
		paths = append(paths, p)
	}
	return Polylines(paths, opts)
}

func newCanvas(opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)
	return img
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}
