package curve

import (
	"math"

	"vectorplot.dev/geom"
)

const (
	maxWindow        = 20
	controlFrac      = 0.3
	refineIterations = 5
	refineStep       = 0.5
)

// Fit converts a polyline into a sequence of cubic Bézier segments.
// It walks a greedy window from the current index, trying the longest
// sub-segment (length <= min(maxWindow, remaining)) first; the first
// window whose RMS fit error is within tolerance is accepted (after a
// local control-point refinement pass) and the cursor advances to the
// window's last point. If no window of any length fits, a straight
// three-point fallback cubic is emitted and the cursor advances by 2.
//
// Emission order always follows the input left-to-right; this
// function does not parallelize the window search (see DESIGN.md).
func Fit(points geom.Polyline, tolerance float64) []Segment {
	if len(points) < 2 {
		return nil
	}
	var out []Segment
	i := 0
	for i < len(points)-1 {
		remaining := len(points) - i
		maxLen := remaining
		if maxLen > maxWindow {
			maxLen = maxWindow
		}
		accepted := false
		for winLen := maxLen; winLen >= 2; winLen-- {
			sub := points[i : i+winLen]
			cand := fitWindow(sub)
			if rmsError(cand, sub) <= tolerance {
				cand = refine(cand, sub)
				out = append(out, cand)
				i += winLen - 1
				accepted = true
				break
			}
		}
		if !accepted {
			end := i + 2
			if end > len(points)-1 {
				end = len(points) - 1
			}
			start, stop := points[i], points[end]
			mid := geom.Lerp(start, stop, 0.5)
			out = append(out, Bezier(start, mid, mid, stop))
			i += 2
		}
	}
	return out
}

// tangentAt estimates the tangent direction of points at index k: a
// forward difference at the first point, a backward difference at the
// last, and a central difference everywhere in between.
func tangentAt(points geom.Polyline, k int) geom.Point {
	n := len(points)
	var d geom.Point
	switch {
	case n < 2:
		return geom.Point{1, 0}
	case k == 0:
		d = points[1].Sub(points[0])
	case k == n-1:
		d = points[n-1].Sub(points[n-2])
	default:
		d = points[k+1].Sub(points[k-1])
	}
	l := d.Length()
	if l == 0 {
		return geom.Point{1, 0}
	}
	return d.Scale(1 / l)
}

// chordParams assigns each point a parameter in [0,1] proportional to
// its cumulative chord length along the window.
func chordParams(points geom.Polyline) []float64 {
	t := make([]float64, len(points))
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += geom.Distance(points[i-1], points[i])
		t[i] = total
	}
	if total == 0 {
		for i := range t {
			if len(t) > 1 {
				t[i] = float64(i) / float64(len(t)-1)
			}
		}
		return t
	}
	for i := range t {
		t[i] /= total
	}
	return t
}

func fitWindow(sub geom.Polyline) Segment {
	start, end := sub[0], sub[len(sub)-1]
	chord := geom.Distance(start, end)
	dist := controlFrac * chord
	t0 := tangentAt(sub, 0)
	t1 := tangentAt(sub, len(sub)-1)
	c1 := start.Add(t0.Scale(dist))
	c2 := end.Sub(t1.Scale(dist))
	return Bezier(start, c1, c2, end)
}

func rmsError(c Segment, sub geom.Polyline) float64 {
	if len(sub) == 0 {
		return 0
	}
	t := chordParams(sub)
	sum := 0.0
	for i, p := range sub {
		e := c.Evaluate(t[i])
		d := geom.Distance(e, p)
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(sub)))
}

// refine performs 5 iterations of exhaustive 3x3 perturbation search
// (step 0.5 in x and y) on each control point independently, keeping
// any perturbation that reduces the RMS error against sub.
func refine(c Segment, sub geom.Polyline) Segment {
	best := c
	bestErr := rmsError(best, sub)
	offsets := []float64{-refineStep, 0, refineStep}
	for iter := 0; iter < refineIterations; iter++ {
		improved := false
		for _, which := range []int{1, 2} {
			for _, dx := range offsets {
				for _, dy := range offsets {
					cand := best
					delta := geom.Point{X: dx, Y: dy}
					if which == 1 {
						cand.Control1 = cand.Control1.Add(delta)
					} else {
						cand.Control2 = cand.Control2.Add(delta)
					}
					if e := rmsError(cand, sub); e < bestErr {
						best = cand
						bestErr = e
						improved = true
					}
				}
			}
		}
		if !improved {
			break
		}
	}
	return best
}
