package travel

import "vectorplot.dev/geom"

const twoOptEpsilon = 1e-9

// TwoOpt reorders paths to reduce total end-to-start travel by
// reversing contiguous blocks, accepting the first strictly-improving
// reversal found when scanning (i, j) in lexicographic order and
// restarting the scan after every accepted move. It stops when a full
// scan finds no improving move, or after maxIter accepted moves,
// whichever comes first. Reversing a block also reverses each path
// inside it, since running the block back-to-front means drawing
// each of its paths back-to-front too.
func TwoOpt(paths []geom.Polyline, maxIter int) []geom.Polyline {
	seq := clonePaths(paths)
	n := len(seq)
	if n < 4 {
		return seq
	}

	iterations := 0
	for iterations < maxIter {
		improved := false
		for i := 1; i <= n-3 && !improved; i++ {
			for j := i + 2; j <= n-1 && !improved; j++ {
				if twoOptDelta(seq, i, j) < -twoOptEpsilon {
					reverseBlock(seq, i, j)
					iterations++
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return seq
}

// twoOptDelta is the change in total travel from reversing seq[i:j+1]:
// only the two boundary edges change, since the edges internal to the
// reversed block connect the same pair of points in the other order.
func twoOptDelta(seq []geom.Polyline, i, j int) float64 {
	n := len(seq)
	before := geom.Distance(seq[i-1].End(), seq[i].Start())
	after := geom.Distance(seq[i-1].End(), seq[j].End())
	if j+1 < n {
		before += geom.Distance(seq[j].End(), seq[j+1].Start())
		after += geom.Distance(seq[i].Start(), seq[j+1].Start())
	}
	return after - before
}

func reverseBlock(seq []geom.Polyline, i, j int) {
	for a, b := i, j; a < b; a, b = a+1, b-1 {
		seq[a], seq[b] = seq[b], seq[a]
	}
	for k := i; k <= j; k++ {
		seq[k] = seq[k].Reverse()
	}
}
