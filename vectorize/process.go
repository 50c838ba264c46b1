package vectorize

import (
	"math"

	"vectorplot.dev/curve"
	"vectorplot.dev/extract/centerline"
	"vectorplot.dev/extract/colorregions"
	"vectorplot.dev/geom"
	"vectorplot.dev/hatching"
	"vectorplot.dev/raster"
	"vectorplot.dev/travel"
	"vectorplot.dev/weight"
)

// Process runs the extraction, line-weight, and path-optimization
// stages for mode and returns the resulting polylines in pixel space.
func Process(r *Raster, mode Mode, opts Options, adv AdvancedOptions) ([]geom.Polyline, error) {
	if err := validate(r, mode, opts); err != nil {
		return nil, err
	}

	paths, err := extract(r, mode, opts, adv)
	if err != nil {
		return nil, err
	}

	if adv.EnableVariableWeight && mode != Hatching {
		paths = applyWeight(paths, r, mode, adv)
	}

	if adv.EnablePathOptimization {
		result := travel.Optimize(paths, travel.Options{
			EnableMerge:       adv.EnablePathMerging,
			MergeThreshold:    mergeThreshold,
			Enable2Opt:        adv.Enable2Opt,
			Max2OptIterations: max2OptIterations,
		})
		paths = result.Paths
	}

	return paths, nil
}

// ProcessWithCurves runs the same pipeline as Process and additionally
// fits the resulting polylines to cubic Béziers (and, optionally,
// arcs). When EnableCurveFitting is false, each polyline is still
// returned as a sequence of degenerate (straight) Bézier segments, so
// the return type stays uniform regardless of configuration.
func ProcessWithCurves(r *Raster, mode Mode, opts Options, adv AdvancedOptions) ([]curve.Segment, error) {
	paths, err := Process(r, mode, opts, adv)
	if err != nil {
		return nil, err
	}

	var out []curve.Segment
	for _, p := range paths {
		var segs []curve.Segment
		if adv.EnableCurveFitting {
			segs = curve.Fit(p, adv.CurveTolerance)
		} else {
			segs = straightSegments(p)
		}
		if adv.EnableArcConversion {
			segs = curve.ConvertArcs(segs, adv.CurveTolerance)
		}
		out = append(out, segs...)
	}
	return out, nil
}

// straightSegments converts a polyline into one Bézier per edge, with
// both control points on the chord, so evaluate() traces a straight
// line between each pair of vertices.
func straightSegments(p geom.Polyline) []curve.Segment {
	if len(p) < 2 {
		return nil
	}
	out := make([]curve.Segment, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		c1 := geom.Lerp(a, b, 1.0/3)
		c2 := geom.Lerp(a, b, 2.0/3)
		out = append(out, curve.Bezier(a, c1, c2, b))
	}
	return out
}

func extract(r *Raster, mode Mode, opts Options, adv AdvancedOptions) ([]geom.Polyline, error) {
	logger := loggerOf(adv)
	switch mode {
	case ColorRegions:
		cropts := colorregions.Options{
			NumColors:     opts.NumColors,
			MaxIterations: colorRegionsMaxIter,
			ConvergeEps:   colorRegionsEps,
			Restarts:      colorRegionsRestarts,
			Seed:          adv.Seed,
			SimplifyEps:   fallbackSimplifyEps,
		}
		out, err := colorregions.Extract(r, cropts)
		if err != nil {
			return nil, err
		}
		if cropts.NumColors > 1 && len(out) == 0 {
			logger.Printf("vectorize: color-region extraction produced no boundaries")
		}
		return out, nil

	case Centerline:
		mask := darkMask(r, opts.Threshold)
		return centerline.Extract(mask, r.Width, r.Height, centerline.Options{MaxGap: opts.Proximity}), nil

	default: // Hatching
		hopts := hatching.Options{
			NumColors: opts.NumColors,
			Style:     adv.HatchingStyle,
			Angle:     opts.HatchAngle * math.Pi / 180,
			Spacing:   opts.HatchSpacing,
			Seed:      adv.Seed,
		}
		return hatching.Generate(r, hopts)
	}
}

// darkMask marks every pixel whose grayscale value is at or below
// level as inside: the centerline extractor traces dark strokes on a
// light background, the opposite sense of raster.Threshold's
// light-on-dark convention.
func darkMask(r *Raster, level float64) *raster.Mask {
	m := raster.NewMask(r.Width, r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			if r.Gray(x, y) <= level {
				m.Set(x, y)
			}
		}
	}
	return m
}

func weightContext(mode Mode) weight.Context {
	switch mode {
	case ColorRegions:
		return weight.ContextOutline
	case Centerline:
		return weight.ContextDetail
	default:
		return weight.ContextFill
	}
}

func applyWeight(paths []geom.Polyline, r *Raster, mode Mode, adv AdvancedOptions) []geom.Polyline {
	ctx := weightContext(mode)
	var out []geom.Polyline
	for _, p := range paths {
		w := weight.Analyze(p, r, ctx)
		out = append(out, weight.Generate(weight.Path{Centerline: p, Weight: w, Style: adv.LineWeightStyle})...)
	}
	return out
}
