// Package hatching fills a raster with plotter-drawable line patterns,
// one pass per grayscale level, choosing hatch density from the level
// rather than line weight. Each pass covers the pixels at or above its
// level's threshold, so the darkest quantization band is never hatched.
package hatching

import (
	"math"
	"math/rand"
	"sync"

	"vectorplot.dev/geom"
	"vectorplot.dev/raster"
)

// Style selects the hatch pattern used within a gray level's region.
type Style uint8

const (
	Parallel Style = iota
	Cross
	Contour
	Stippling
)

// Options configures hatch generation.
type Options struct {
	NumColors int
	Style     Style
	Angle     float64 // radians, used by Parallel and Cross
	Spacing   float64 // base spacing; each style derives its own effective spacing from this and the level's intensity
	Seed      int64
}

// Defaults returns the orchestrator's documented defaults.
func Defaults() Options {
	return Options{
		NumColors: 5,
		Style:     Parallel,
		Angle:     math.Pi / 4,
		Spacing:   4,
		Seed:      1,
	}
}

// Generate quantizes r's grayscale into opts.NumColors levels (level 0
// darkest, step = 255/numColors) and, for every level L in
// [0, numColors-2], builds a cumulative mask of pixels at or above
// (L+0.5)*step and fills it with the configured hatch style. Levels
// are generated concurrently but always reported in ascending level
// order.
func Generate(r *raster.Raster, opts Options) ([]geom.Polyline, error) {
	if err := r.Valid(); err != nil {
		return nil, err
	}
	levels := opts.NumColors
	if levels < 2 {
		levels = 2
	}
	step := 255.0 / float64(levels)

	gray := make([]float64, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			gray[y*r.Width+x] = r.Gray(x, y)
		}
	}

	nlevels := levels - 1 // L ranges over [0, levels-2]
	perLevel := make([][]geom.Polyline, nlevels)
	var wg sync.WaitGroup
	for l := 0; l < nlevels; l++ {
		wg.Add(1)
		go func(l int) {
			defer wg.Done()
			mask := levelMask(gray, r.Width, r.Height, step, l)
			intensity := intensityOf(l, levels)
			perLevel[l] = fill(mask, r.Width, r.Height, opts, intensity, l)
		}(l)
	}
	wg.Wait()

	var out []geom.Polyline
	for l := 0; l < nlevels; l++ {
		out = append(out, perLevel[l]...)
	}
	return out, nil
}

// intensityOf maps level 0 (darkest) to 1.0 and level levels-1
// (excluded from the generated range, but used as the normalization
// bound) to 0.0.
func intensityOf(level, levels int) float64 {
	if levels <= 1 {
		return 1
	}
	return 1 - float64(level)/float64(levels-1)
}

// levelMask marks every pixel whose grayscale value is at or above
// the level's cumulative threshold (L+0.5)*step: darker levels'
// masks are supersets of lighter levels', so denser hatching at a
// dark level's pass can stack on top of a lighter level's pass
// covering the same pixels.
func levelMask(gray []float64, width, height int, step float64, level int) *raster.Mask {
	threshold := (float64(level) + 0.5) * step
	m := raster.NewMask(width, height)
	for i, g := range gray {
		if g >= threshold {
			x, y := i%width, i/width
			m.Set(x, y)
		}
	}
	return m
}

func fill(mask *raster.Mask, width, height int, opts Options, intensity float64, level int) []geom.Polyline {
	switch opts.Style {
	case Cross:
		rng := rand.New(rand.NewSource(opts.Seed + int64(level)))
		return crossHatch(mask, width, height, opts.Angle, opts.Spacing, intensity, rng)
	case Contour:
		return contourHatch(mask, width, height, opts.Spacing, intensity)
	case Stippling:
		rng := rand.New(rand.NewSource(opts.Seed + int64(level)))
		return stipplingHatch(mask, width, height, opts.Spacing, intensity, rng)
	default:
		spacing := parallelSpacing(opts.Spacing, intensity)
		return parallelHatch(mask, width, height, opts.Angle, spacing)
	}
}

// parallelSpacing is the Parallel style's effective line spacing:
// denser (smaller) as intensity rises, capped so spacing never grows
// unbounded as intensity approaches 0.
func parallelSpacing(baseSpacing, intensity float64) float64 {
	return baseSpacing / math.Max(0.3, intensity)
}
