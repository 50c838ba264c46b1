package travel

import "vectorplot.dev/geom"

// Merge coalesces pairs of paths whose nearest endpoints lie within
// threshold, splicing them (reversing a side where needed) into a
// single longer path. For each unused path it repeatedly scans for
// the first unused candidate, in index order, offering any of the
// four endpoint pairings within threshold; it applies whichever
// pairing is closest, marks the candidate used, and restarts the scan
// from the beginning so a newly-grown path can keep absorbing
// neighbors. This is an O(n^3) worst case (a full rescan per merge,
// up to n merges, across n starting paths) by construction, favoring
// the simplicity of a full rescan over a nearest-neighbor structure.
func Merge(paths []geom.Polyline, threshold float64) []geom.Polyline {
	n := len(paths)
	used := make([]bool, n)
	var out []geom.Polyline

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		used[i] = true
		cur := paths[i].Clone()

		for {
			merged := false
			for j := 0; j < n; j++ {
				if used[j] {
					continue
				}
				cand := paths[j]
				dEndStart := geom.Distance(cur.End(), cand.Start())
				dEndEnd := geom.Distance(cur.End(), cand.End())
				dStartStart := geom.Distance(cur.Start(), cand.Start())
				dStartEnd := geom.Distance(cur.Start(), cand.End())

				best := dEndStart
				kind := 0
				if dEndEnd < best {
					best, kind = dEndEnd, 1
				}
				if dStartStart < best {
					best, kind = dStartStart, 2
				}
				if dStartEnd < best {
					best, kind = dStartEnd, 3
				}
				if best > threshold {
					continue
				}

				switch kind {
				case 0:
					cur = appendPath(cur, cand)
				case 1:
					cur = appendPath(cur, cand.Reverse())
				case 2:
					cur = appendPath(cand.Reverse(), cur)
				case 3:
					cur = appendPath(cand, cur)
				}
				used[j] = true
				merged = true
				break
			}
			if !merged {
				break
			}
		}
		out = append(out, cur)
	}
	return out
}

// appendPath joins b after a, sharing the junction point once if a's
// end coincides exactly with b's start.
func appendPath(a, b geom.Polyline) geom.Polyline {
	out := make(geom.Polyline, 0, len(a)+len(b))
	out = append(out, a...)
	start := 0
	if len(a) > 0 && len(b) > 0 && a.End() == b[0] {
		start = 1
	}
	out = append(out, b[start:]...)
	return out
}
