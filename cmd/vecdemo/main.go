// Command vecdemo decodes a PNG, runs it through the vectorize
// pipeline, and writes a PNG preview of the resulting strokes. It is
// a thin demonstration of the core library, not part of it: image
// decoding and file I/O live here, outside the package boundary the
// pipeline itself never crosses.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"vectorplot.dev/internal/render"
	"vectorplot.dev/raster"
	"vectorplot.dev/vectorize"
)

var (
	mode         = flag.String("mode", "colorregions", "colorregions | centerline | hatching")
	numColors    = flag.Int("colors", 6, "number of color levels [2,32]")
	threshold    = flag.Float64("threshold", 128, "binarization threshold [0,255]")
	proximity    = flag.Float64("proximity", 3, "centerline stitch proximity [0,50]")
	hatchSpacing = flag.Float64("hatch-spacing", 4, "hatch line spacing [1,20]")
	hatchAngle   = flag.Float64("hatch-angle", 45, "hatch line angle in degrees [0,180]")
	optimize     = flag.Bool("optimize", false, "enable path merging and 2-opt travel optimization")
	weight       = flag.Bool("weight", false, "enable variable line weight simulation")
	curves       = flag.Bool("curves", false, "fit Bézier curves instead of emitting raw polylines")
)

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: vecdemo [flags] input.png output.png")
		os.Exit(1)
	}

	r, err := loadRaster(flag.Arg(0))
	if err != nil {
		log.Fatalf("vecdemo: %v", err)
	}

	m, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("vecdemo: %v", err)
	}

	opts := vectorize.Options{
		NumColors:    *numColors,
		Threshold:    *threshold,
		Proximity:    *proximity,
		HatchSpacing: *hatchSpacing,
		HatchAngle:   *hatchAngle,
	}
	adv := vectorize.DefaultAdvancedOptions()
	adv.EnableCurveFitting = *curves
	adv.EnableVariableWeight = *weight
	adv.EnablePathOptimization = *optimize
	adv.Logger = log.New(os.Stderr, "vecdemo: ", 0)

	img := renderResult(r, m, opts, adv, *curves)

	out, err := os.Create(flag.Arg(1))
	if err != nil {
		log.Fatalf("vecdemo: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatalf("vecdemo: %v", err)
	}
}

func renderResult(r *raster.Raster, m vectorize.Mode, opts vectorize.Options, adv vectorize.AdvancedOptions, curves bool) image.Image {
	renderOpts := render.DefaultOptions(r.Width, r.Height)
	if curves {
		segs, err := vectorize.ProcessWithCurves(r, m, opts, adv)
		if err != nil {
			log.Fatalf("vecdemo: %v", err)
		}
		return render.Curves(segs, renderOpts)
	}
	paths, err := vectorize.Process(r, m, opts, adv)
	if err != nil {
		log.Fatalf("vecdemo: %v", err)
	}
	return render.Polylines(paths, renderOpts)
}

func parseMode(s string) (vectorize.Mode, error) {
	switch s {
	case "colorregions":
		return vectorize.ColorRegions, nil
	case "centerline":
		return vectorize.Centerline, nil
	case "hatching":
		return vectorize.Hatching, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func loadRaster(path string) (*raster.Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	r := raster.New(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.At(x, y)
			rr, gg, bb, aa := c.RGBA()
			r.Set(x-bounds.Min.X, y-bounds.Min.Y, raster.RGBA{
				R: uint8(rr >> 8),
				G: uint8(gg >> 8),
				B: uint8(bb >> 8),
				A: uint8(aa >> 8),
			})
		}
	}
	return r, nil
}
