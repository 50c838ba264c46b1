package hatching

import (
	"math"
	"math/rand"

	"vectorplot.dev/contour"
	"vectorplot.dev/geom"
	"vectorplot.dev/poisson"
	"vectorplot.dev/raster"
)

const sampleStep = 0.5

// parallelHatch fills mask with evenly spaced lines running at angle,
// clipped to the mask's inside runs. Lines are laid out perpendicular
// to (cos(angle), sin(angle)) across the raster's bounding diagonal,
// each sampled at sampleStep and split into one polyline per
// contiguous inside run.
func parallelHatch(mask *raster.Mask, width, height int, angle, spacing float64) []geom.Polyline {
	dir := geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	normal := geom.Point{X: -dir.Y, Y: dir.X}

	diag := math.Hypot(float64(width), float64(height))
	cx, cy := float64(width)/2, float64(height)/2

	var out []geom.Polyline
	for offset := -diag; offset <= diag; offset += spacing {
		origin := geom.Point{X: cx + normal.X*offset, Y: cy + normal.Y*offset}
		out = append(out, clipLine(mask, origin, dir, diag)...)
	}
	return out
}

// clipLine samples the infinite line through origin in direction dir
// over [-halfLen, halfLen] and returns one polyline per contiguous run
// of inside samples.
func clipLine(mask *raster.Mask, origin, dir geom.Point, halfLen float64) []geom.Polyline {
	var out []geom.Polyline
	var cur geom.Polyline
	for t := -halfLen; t <= halfLen; t += sampleStep {
		p := geom.Point{X: origin.X + dir.X*t, Y: origin.Y + dir.Y*t}
		if mask.InAt(p.X, p.Y) {
			cur = append(cur, p)
		} else if len(cur) > 0 {
			if len(cur) >= 2 {
				out = append(out, cur)
			}
			cur = nil
		}
	}
	if len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}

// crossHatch lays down ⌈intensity·4⌉ parallel passes, cycling through
// angle, angle+90°, angle+45° and angle+135°, each pass spaced
// baseSpacing/max(0.3,intensity)·(1+0.3·layer) apart. Every layer past
// the first is symmetrically trimmed by a random length factor in
// [0.8, 1.2], clamped to keep at most the original length.
func crossHatch(mask *raster.Mask, width, height int, angle, baseSpacing, intensity float64, rng *rand.Rand) []geom.Polyline {
	spacing := parallelSpacing(baseSpacing, intensity)
	layers := int(math.Ceil(intensity * 4))
	angles := [4]float64{angle, angle + math.Pi/2, angle + math.Pi/4, angle + 3*math.Pi/4}

	var out []geom.Polyline
	for l := 0; l < layers; l++ {
		lines := parallelHatch(mask, width, height, angles[l%4], spacing*(1+0.3*float64(l)))
		if l > 0 {
			for i, p := range lines {
				lines[i] = trimSymmetric(p, math.Min(1, 0.8+0.4*rng.Float64()))
			}
		}
		out = append(out, lines...)
	}
	return out
}

// trimSymmetric keeps the middle keepFrac share of p's arc length,
// removing the remainder evenly from both ends by interpolating new
// endpoints rather than dropping vertices outright.
func trimSymmetric(p geom.Polyline, keepFrac float64) geom.Polyline {
	if keepFrac >= 1 || len(p) < 2 {
		return p.Clone()
	}
	total := p.Length()
	if total == 0 {
		return p.Clone()
	}
	trim := total * (1 - keepFrac) / 2
	return sliceByArcLength(p, trim, total-trim)
}

// sliceByArcLength returns the portion of p between arc-length
// positions from and to (0 <= from < to <= p.Length()).
func sliceByArcLength(p geom.Polyline, from, to float64) geom.Polyline {
	if from >= to {
		mid := p.Length() / 2
		from, to = mid, mid
	}
	var out geom.Polyline
	acc := 0.0
	for i := 1; i < len(p); i++ {
		segStart, segEnd := p[i-1], p[i]
		segLen := geom.Distance(segStart, segEnd)
		segFrom, segTo := acc, acc+segLen
		acc = segTo
		if segTo < from || segFrom > to || segLen == 0 {
			continue
		}
		lo := math.Max(from, segFrom)
		hi := math.Min(to, segTo)
		a := geom.Lerp(segStart, segEnd, (lo-segFrom)/segLen)
		b := geom.Lerp(segStart, segEnd, (hi-segFrom)/segLen)
		if len(out) == 0 {
			out = append(out, a)
		}
		out = append(out, b)
	}
	return out
}

// contourHatch fills mask by tracing its boundary contours and, for
// each of ⌈intensity·8⌉ layers, offsetting every contour inward by
// ℓ·spacing (spacing = baseSpacing/(0.3+0.7·intensity)) using a
// per-vertex normal averaged from the ring's two adjacent edges
// (wrapping around, since a contour is closed), then smoothing twice
// with the cyclic (1,2,1)/4 weighted mean.
func contourHatch(mask *raster.Mask, width, height int, baseSpacing, intensity float64) []geom.Polyline {
	loops := contour.Extract(mask, width, height)
	spacing := baseSpacing / (0.3 + 0.7*intensity)
	layers := int(math.Ceil(intensity * 8))

	var out []geom.Polyline
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		for l := 0; l < layers; l++ {
			ring := offsetCyclic(loop, -float64(l)*spacing)
			ring = smoothCyclic(ring)
			ring = smoothCyclic(ring)
			if len(ring) < 3 {
				continue
			}
			out = append(out, ring)
		}
	}
	return out
}

// offsetCyclic translates every vertex of the closed ring along its
// averaged-bisector normal (the mean of the normals of its two
// incident edges, wrapping around at the ends, falling back to the
// first edge's normal if the average cancels out).
func offsetCyclic(ring geom.Polyline, offset float64) geom.Polyline {
	n := len(ring)
	out := make(geom.Polyline, n)
	for i := range ring {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]
		n1 := geom.Normal(prev, cur)
		n2 := geom.Normal(cur, next)
		sum := n1.Add(n2)
		var normal geom.Point
		if l := sum.Length(); l > 1e-9 {
			normal = sum.Scale(1 / l)
		} else {
			normal = n1
		}
		out[i] = cur.Add(normal.Scale(offset))
	}
	return out
}

// smoothCyclic applies the (1,2,1)/4 weighted mean to every vertex of
// a closed ring, wrapping around at the ends.
func smoothCyclic(ring geom.Polyline) geom.Polyline {
	n := len(ring)
	out := make(geom.Polyline, n)
	for i := range ring {
		prev := ring[(i-1+n)%n]
		cur := ring[i]
		next := ring[(i+1)%n]
		out[i] = geom.Point{
			X: (prev.X + 2*cur.X + next.X) / 4,
			Y: (prev.Y + 2*cur.Y + next.Y) / 4,
		}
	}
	return out
}

// stipplingHatch scatters Poisson-disk-distributed dots (short
// horizontal dashes, since a plotter has no point primitive) over
// mask's inside area. minDist/maxDist/target follow the stippling
// density formula directly from baseSpacing and the level's
// intensity.
func stipplingHatch(mask *raster.Mask, width, height int, baseSpacing, intensity float64, rng *rand.Rand) []geom.Polyline {
	minDist := baseSpacing * 0.5
	maxDist := baseSpacing * 2
	target := int(float64(width*height) * (intensity * 0.3) / (minDist * minDist))

	samples := poisson.Sample(poisson.Params{
		Width:   width,
		Height:  height,
		MinDist: minDist,
		MaxDist: maxDist,
		K:       30,
		Target:  maxInt(target, 1),
	}, rng)

	var out []geom.Polyline
	for _, s := range samples {
		if !mask.InAt(s.X, s.Y) {
			continue
		}
		out = append(out, geom.Polyline{
			{X: s.X, Y: s.Y},
			{X: s.X + 0.5 + rng.Float64(), Y: s.Y},
		})
	}
	return out
}

func maxInt(n, min int) int {
	if n < min {
		return min
	}
	return n
}
