// Package travel optimizes the pen-travel distance of an ordered list
// of polylines via merging, 2-opt reordering and a greedy adjacent
// swap.
package travel

import "vectorplot.dev/geom"

// Options configures Optimize. Merge and 2-opt are each independently
// toggled; the greedy adjacent-swap pass always runs once Optimize is
// called, since it has no separate enable flag.
type Options struct {
	EnableMerge       bool
	MergeThreshold    float64
	Enable2Opt        bool
	Max2OptIterations int
}

// Result reports the optimized path order along with its travel
// distance and percentage improvement over the input order.
type Result struct {
	Paths         []geom.Polyline
	TotalDistance float64
	Improvement   float64
}

// TotalTravel is the sum of the gaps between one path's end and the
// next path's start.
func TotalTravel(paths []geom.Polyline) float64 {
	total := 0.0
	for i := 1; i < len(paths); i++ {
		total += geom.Distance(paths[i-1].End(), paths[i].Start())
	}
	return total
}

// Optimize runs the configured passes in order (merge, then 2-opt,
// then the greedy swap) and reports the resulting travel distance and
// improvement percentage, clamped to 0 when the input has zero
// travel.
func Optimize(paths []geom.Polyline, opts Options) Result {
	original := TotalTravel(paths)
	cur := clonePaths(paths)

	if opts.EnableMerge {
		cur = Merge(cur, opts.MergeThreshold)
	}
	if opts.Enable2Opt {
		cur = TwoOpt(cur, opts.Max2OptIterations)
	}
	cur = GreedySwap(cur)

	final := TotalTravel(cur)
	improvement := 0.0
	if original > 0 {
		improvement = (original - final) / original * 100
		if improvement < 0 {
			improvement = 0
		}
	}
	return Result{Paths: cur, TotalDistance: final, Improvement: improvement}
}

func clonePaths(paths []geom.Polyline) []geom.Polyline {
	out := make([]geom.Polyline, len(paths))
	for i, p := range paths {
		out[i] = p.Clone()
	}
	return out
}
