// Package vectorize is the public entry point of the image-to-plotter
// pipeline: it wires extraction, curve fitting, line-weight
// simulation, and path optimization into the two functions a caller
// needs, Process and ProcessWithCurves.
package vectorize

import (
	"errors"
	"fmt"

	"vectorplot.dev/hatching"
	"vectorplot.dev/raster"
	"vectorplot.dev/weight"
)

// Raster is the pipeline's external pixel contract: RGBA8, row-major,
// alpha ignored, both dimensions >= 1.
type Raster = raster.Raster

// Mode selects which extraction strategy produces the raw polylines.
type Mode uint8

const (
	ColorRegions Mode = iota
	Centerline
	Hatching
)

// HatchingStyle selects the hatch pattern used in Hatching mode.
type HatchingStyle = hatching.Style

const (
	HatchParallel  = hatching.Parallel
	HatchCross     = hatching.Cross
	HatchContour   = hatching.Contour
	HatchStippling = hatching.Stippling
)

// WeightStyle selects the multi-line simulation used for variable
// line weight.
type WeightStyle = weight.Style

const (
	WeightParallel = weight.Parallel
	WeightOutline  = weight.Outline
	WeightScribble = weight.Scribble
	WeightZigzag   = weight.Zigzag
)

// Options are the extraction knobs common to every mode.
type Options struct {
	NumColors    int     // [2,32]
	Threshold    float64 // [0,255]
	Proximity    float64 // [0,50]
	HatchSpacing float64 // [1,20]
	HatchAngle   float64 // degrees, [0,180]
}

// Logger receives diagnostic messages for recoverable failures
// (ExtractorFailure in the error taxonomy). The standard library's
// *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

// AdvancedOptions configures the optional post-extraction stages.
type AdvancedOptions struct {
	EnableCurveFitting bool
	CurveTolerance     float64 // default 2.0

	EnableArcConversion bool

	HatchingStyle HatchingStyle // default HatchParallel

	EnableVariableWeight bool        // ignored in Hatching mode
	LineWeightStyle      WeightStyle // default WeightParallel

	EnablePathOptimization bool
	EnablePathMerging      bool // default true, only consulted under EnablePathOptimization
	Enable2Opt             bool // default true, only consulted under EnablePathOptimization

	Seed int64 // default 1, drives k-means/cross-hatch-trim/Poisson-disk determinism; scribble jitter is seeded by copy index

	// Logger receives ExtractorFailure diagnostics. Defaults to a
	// no-op logger when nil.
	Logger Logger
}

// DefaultAdvancedOptions returns the documented defaults for every
// optional stage: curve fitting and arc conversion off, path merging
// and 2-opt on once optimization is enabled, deterministic seed 1.
func DefaultAdvancedOptions() AdvancedOptions {
	return AdvancedOptions{
		CurveTolerance:    2.0,
		HatchingStyle:     HatchParallel,
		LineWeightStyle:   WeightParallel,
		EnablePathMerging: true,
		Enable2Opt:        true,
		Seed:              1,
	}
}

// Fixed tuning constants for the stages Options doesn't expose directly.
const (
	mergeThreshold       = 5.0
	max2OptIterations    = 100
	fallbackSimplifyEps  = 2.0
	colorRegionsRestarts = 10
	colorRegionsMaxIter  = 20
	colorRegionsEps      = 1.0
)

// ErrInvalidInput is wrapped into any error returned because of a bad
// raster or out-of-range option.
var ErrInvalidInput = errors.New("vectorize: invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validate(r *Raster, mode Mode, opts Options) error {
	if r == nil {
		return invalidf("raster is nil")
	}
	if err := r.Valid(); err != nil {
		return invalidf("%v", err)
	}
	if opts.NumColors < 2 || opts.NumColors > 32 {
		return invalidf("numColors %d out of range [2,32]", opts.NumColors)
	}
	if opts.Threshold < 0 || opts.Threshold > 255 {
		return invalidf("threshold %v out of range [0,255]", opts.Threshold)
	}
	if opts.Proximity < 0 || opts.Proximity > 50 {
		return invalidf("proximity %v out of range [0,50]", opts.Proximity)
	}
	if opts.HatchSpacing < 1 || opts.HatchSpacing > 20 {
		return invalidf("hatchSpacing %v out of range [1,20]", opts.HatchSpacing)
	}
	if opts.HatchAngle < 0 || opts.HatchAngle > 180 {
		return invalidf("hatchAngle %v out of range [0,180]", opts.HatchAngle)
	}
	switch mode {
	case ColorRegions, Centerline, Hatching:
	default:
		return invalidf("unknown mode %d", mode)
	}
	return nil
}

func loggerOf(adv AdvancedOptions) Logger {
	if adv.Logger != nil {
		return adv.Logger
	}
	return nopLogger{}
}
