package weight

import (
	"math"

	"vectorplot.dev/geom"
	"vectorplot.dev/raster"
)

// Context selects which weight formula to apply to a measured local
// contrast when a weight isn't supplied directly.
type Context uint8

const (
	ContextOutline Context = iota
	ContextDetail
	ContextFill
)

// Analyze estimates an appropriate weight for centerline by sampling
// up to 10 equally-spaced vertices and measuring local contrast
// ((max-min)/255) over each sample's 3x3 pixel neighborhood, then
// mapping the mean contrast through the context's formula:
// outline -> 1+2c, detail -> 1+c, fill -> max(0.5, 1-0.5c).
func Analyze(centerline geom.Polyline, r *raster.Raster, ctx Context) float64 {
	c := meanContrast(centerline, r)
	switch ctx {
	case ContextOutline:
		return 1 + 2*c
	case ContextFill:
		return math.Max(0.5, 1-0.5*c)
	default:
		return 1 + c
	}
}

func meanContrast(centerline geom.Polyline, r *raster.Raster) float64 {
	if len(centerline) == 0 || r == nil {
		return 0
	}
	const maxSamples = 10
	n := len(centerline)
	count := maxSamples
	if n < count {
		count = n
	}
	sum := 0.0
	valid := 0
	for i := 0; i < count; i++ {
		idx := i * (n - 1) / maxOne(count-1)
		p := centerline[idx]
		c, ok := localContrast(r, int(p.X+0.5), int(p.Y+0.5))
		if ok {
			sum += c
			valid++
		}
	}
	if valid == 0 {
		return 0
	}
	return sum / float64(valid)
}

func maxOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func localContrast(r *raster.Raster, x, y int) (float64, bool) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	found := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || yy < 0 || xx >= r.Width || yy >= r.Height {
				continue
			}
			g := r.Gray(xx, yy)
			if g < lo {
				lo = g
			}
			if g > hi {
				hi = g
			}
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return (hi - lo) / 255, true
}
