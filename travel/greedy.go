package travel

import "vectorplot.dev/geom"

const greedyEpsilon = 1e-9

// GreedySwap repeatedly scans adjacent pairs of paths and swaps any
// pair whose exchange strictly reduces the local travel through its
// neighbors, looping until a full pass makes no swap.
func GreedySwap(paths []geom.Polyline) []geom.Polyline {
	seq := clonePaths(paths)
	n := len(seq)
	if n < 2 {
		return seq
	}

	for {
		swapped := false
		for i := 0; i < n-1; i++ {
			if localCost(seq, i, true) < localCost(seq, i, false)-greedyEpsilon {
				seq[i], seq[i+1] = seq[i+1], seq[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return seq
}

// localCost sums the travel edges touching positions i, i+1: the gap
// from the previous path (if any), the gap between the pair, and the
// gap to the next path (if any). When swapped is true it measures the
// cost with seq[i] and seq[i+1] exchanged, without mutating seq.
func localCost(seq []geom.Polyline, i int, swapped bool) float64 {
	n := len(seq)
	a, b := seq[i], seq[i+1]
	if swapped {
		a, b = b, a
	}
	cost := geom.Distance(a.End(), b.Start())
	if i > 0 {
		cost += geom.Distance(seq[i-1].End(), a.Start())
	}
	if i+2 < n {
		cost += geom.Distance(b.End(), seq[i+2].Start())
	}
	return cost
}
