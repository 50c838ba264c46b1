// Package centerline extracts the skeleton of thin stroke-like
// regions in a mask by detecting each row's horizontal runs and
// stitching their centers into continuous polylines across rows.
package centerline

import (
	"math"

	"vectorplot.dev/geom"
	"vectorplot.dev/raster"
)

// Options configures the row-run stitcher.
type Options struct {
	// MaxGap is the extra horizontal slack, beyond the two runs'
	// combined half-widths, allowed when connecting a run in one row
	// to a run in the next.
	MaxGap float64
}

// Defaults returns the stitcher's documented defaults.
func Defaults() Options {
	return Options{MaxGap: 3.0}
}

const minPathPoints = 3

type run struct {
	row    int
	x0, x1 int
}

func (r run) center() geom.Point {
	return geom.Point{X: float64(r.x0+r.x1) / 2, Y: float64(r.row)}
}

func (r run) halfWidth() float64 {
	return float64(r.x1-r.x0) / 2
}

func detectRuns(m *raster.Mask, width, height int) [][]run {
	rows := make([][]run, height)
	for y := 0; y < height; y++ {
		x := 0
		for x < width {
			if !m.In(x, y) {
				x++
				continue
			}
			start := x
			for x < width && m.In(x, y) {
				x++
			}
			rows[y] = append(rows[y], run{row: y, x0: start, x1: x - 1})
		}
	}
	return rows
}

// Extract traces centerlines through m's row runs. It makes two
// passes over the rows: a downward sweep (top to bottom) in which
// every run either extends an open path or starts a new one, so every
// run is claimed, then an upward sweep (bottom to top) over the runs
// still unclaimed, whose paths would be reversed back into
// top-to-bottom point order; after a full downward sweep no run is
// left for it. Each run is claimed by at most one path across both
// sweeps. Only paths of at least 3 points are returned.
func Extract(m *raster.Mask, width, height int, opts Options) []geom.Polyline {
	rows := detectRuns(m, width, height)
	used := make([][]bool, height)
	for y := range rows {
		used[y] = make([]bool, len(rows[y]))
	}

	var paths []geom.Polyline
	paths = append(paths, stitch(rows, used, opts, true)...)
	paths = append(paths, stitch(rows, used, opts, false)...)

	var out []geom.Polyline
	for _, p := range paths {
		if len(p) >= minPathPoints {
			out = append(out, p)
		}
	}
	return out
}

type openPath struct {
	pts     []geom.Point
	lastRun run
}

// stitch performs one directional sweep, extending open paths row by
// row and starting new ones from any run left unclaimed in a row it
// visits. Runs already marked used (by this or a prior sweep) are
// never reconsidered.
func stitch(rows [][]run, used [][]bool, opts Options, downward bool) []geom.Polyline {
	height := len(rows)
	order := make([]int, height)
	for i := range order {
		order[i] = i
	}
	if !downward {
		for i, j := 0, height-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	var open []openPath
	var closed []geom.Polyline

	for _, y := range order {
		claimed := make([]bool, len(rows[y]))
		var stillOpen []openPath
		for _, op := range open {
			idx, ok := nearestUnclaimed(rows[y], used[y], claimed, op.lastRun, opts.MaxGap)
			if !ok {
				closed = append(closed, finish(op.pts, downward))
				continue
			}
			r := rows[y][idx]
			op.pts = append(op.pts, r.center())
			op.lastRun = r
			used[y][idx] = true
			claimed[idx] = true
			stillOpen = append(stillOpen, op)
		}
		open = stillOpen

		for i, r := range rows[y] {
			if used[y][i] || claimed[i] {
				continue
			}
			used[y][i] = true
			open = append(open, openPath{pts: []geom.Point{r.center()}, lastRun: r})
		}
	}
	for _, op := range open {
		closed = append(closed, finish(op.pts, downward))
	}
	return closed
}

// nearestUnclaimed finds the row run closest in horizontal center
// distance to from, among runs not yet used or claimed this row,
// within from's proximity cost threshold (the two runs' combined
// half-widths plus maxGap slack).
func nearestUnclaimed(candidates []run, used, claimed []bool, from run, maxGap float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, r := range candidates {
		if used[i] || claimed[i] {
			continue
		}
		d := math.Abs(r.center().X - from.center().X)
		threshold := maxGap + from.halfWidth() + r.halfWidth()
		if d <= threshold && d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0
}

func finish(pts []geom.Point, downward bool) geom.Polyline {
	p := geom.Polyline(pts)
	if !downward {
		return p.Reverse()
	}
	return p
}
