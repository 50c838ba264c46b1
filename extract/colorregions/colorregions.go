// Package colorregions extracts filled-region boundaries from a
// raster by quantizing its color space with k-means and tracing the
// outline of each resulting cluster.
package colorregions

import (
	"math/rand"
	"sync"

	"vectorplot.dev/cluster"
	"vectorplot.dev/contour"
	"vectorplot.dev/geom"
	"vectorplot.dev/raster"
)

// Options configures the extraction. Zero values are not valid;
// callers should start from Defaults().
type Options struct {
	NumColors     int
	MaxIterations int
	ConvergeEps   float64
	Restarts      int
	Seed          int64
	SimplifyEps   float64
}

// Defaults returns the extractor's documented defaults.
func Defaults() Options {
	return Options{
		NumColors:     6,
		MaxIterations: 20,
		ConvergeEps:   1.0,
		Restarts:      10,
		Seed:          1,
		SimplifyEps:   2.0,
	}
}

const (
	minPointsBeforeSimplify = 10
	minPointsAfterSimplify  = 3
	fixedFallbackLevel      = 128
)

// Extract quantizes r into opts.NumColors clusters and returns the
// simplified boundary polylines of every cluster's mask, ordered by
// ascending cluster index (and, within a cluster, in the contour
// tracer's discovery order). If k-means returns an error (which it
// does only for an empty sample set or NumColors < 1), it falls back
// to a fixed mid-gray threshold producing a single two-region split.
func Extract(r *raster.Raster, opts Options) ([]geom.Polyline, error) {
	if err := r.Valid(); err != nil {
		return nil, err
	}

	samples := r.RGB()
	rng := rand.New(rand.NewSource(opts.Seed))
	result, err := cluster.KMeans(samples, opts.NumColors, opts.MaxIterations, opts.ConvergeEps, opts.Restarts, rng)
	if err != nil {
		return extractFallback(r, opts.SimplifyEps), nil
	}

	k := len(result.Centers)
	perCluster := make([][]geom.Polyline, k)
	var wg sync.WaitGroup
	for c := 0; c < k; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			mask := raster.LabelMask(r.Width, r.Height, result.Labels, c)
			perCluster[c] = contoursFromMask(mask, r.Width, r.Height, opts.SimplifyEps)
		}(c)
	}
	wg.Wait()

	var out []geom.Polyline
	for c := 0; c < k; c++ {
		out = append(out, perCluster[c]...)
	}
	return out, nil
}

// extractFallback thresholds r's grayscale at a fixed mid-level,
// producing the inside region's boundaries. It is the extractor's
// degraded path when k-means cannot run.
func extractFallback(r *raster.Raster, simplifyEps float64) []geom.Polyline {
	gray := make([]float64, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			gray[y*r.Width+x] = r.Gray(x, y)
		}
	}
	mask := raster.Threshold(r.Width, r.Height, gray, fixedFallbackLevel)
	return contoursFromMask(mask, r.Width, r.Height, simplifyEps)
}

func contoursFromMask(mask *raster.Mask, width, height int, simplifyEps float64) []geom.Polyline {
	loops := contour.Extract(mask, width, height)

	var out []geom.Polyline
	for _, loop := range loops {
		if len(loop) < minPointsBeforeSimplify {
			continue
		}
		simplified := geom.Simplify(loop, simplifyEps)
		if len(simplified) < minPointsAfterSimplify {
			continue
		}
		out = append(out, simplified)
	}
	return out
}
