package weight

import (
	"math"

	"vectorplot.dev/geom"
)

func parallel(p geom.Polyline, weight, thickness float64) []geom.Polyline {
	lines := int(math.Ceil(weight * 2))
	if lines < 1 {
		lines = 1
	}
	out := make([]geom.Polyline, 0, lines)
	if lines == 1 {
		return append(out, Offset(p, 0))
	}
	for i := 0; i < lines; i++ {
		t := float64(i) / float64(lines-1)
		offset := -thickness/2 + t*thickness
		out = append(out, Offset(p, offset))
	}
	return out
}

func outline(p geom.Polyline, thickness float64) []geom.Polyline {
	out := []geom.Polyline{
		Offset(p, -thickness/2),
		Offset(p, thickness/2),
	}
	spacing := math.Max(0.5, thickness/8)
	for o := -thickness/2 + spacing; o < thickness/2; o += spacing {
		line := Offset(p, o)
		out = append(out, trimEnds(line, 0.1))
	}
	return out
}

func zigzag(p geom.Polyline, thickness float64) []geom.Polyline {
	var sawtooth geom.Polyline
	sign := 1.0
	for i := 1; i < len(p); i++ {
		a, b := p[i-1], p[i]
		segLen := geom.Distance(a, b)
		steps := int(math.Floor(segLen / math.Max(2, thickness)))
		if steps < 1 {
			steps = 1
		}
		n := geom.Normal(a, b)
		if len(sawtooth) == 0 {
			sawtooth = append(sawtooth, a.Add(n.Scale(sign*thickness/2)))
		}
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			base := geom.Lerp(a, b, t)
			sign = -sign
			sawtooth = append(sawtooth, base.Add(n.Scale(sign*thickness/2)))
		}
	}
	out := []geom.Polyline{sawtooth}
	out = append(out, Offset(p, -thickness/2), Offset(p, thickness/2))
	return out
}

func scribble(p geom.Polyline, thickness float64) []geom.Polyline {
	copies := int(math.Ceil(math.Min(thickness, 4) * 3))
	if copies < 0 {
		copies = 0
	}
	out := make([]geom.Polyline, 0, copies+1)
	out = append(out, p.Clone())
	for i := 0; i < copies; i++ {
		out = append(out, scribbleCopy(p, thickness, uint32(i)))
	}
	return out
}

// lcg is the seeded linear congruential generator used to jitter
// scribble copies: state = state*1664525 + 1013904223 mod 2^32.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

func (g *lcg) next() uint32 {
	g.state = g.state*1664525 + 1013904223
	return g.state
}

// float64 returns a uniform value in [0,1).
func (g *lcg) float64() float64 {
	return float64(g.next()) / 4294967296.0
}

func scribbleCopy(p geom.Polyline, thickness float64, seed uint32) geom.Polyline {
	rng := newLCG(seed)
	jitter := thickness / 4
	jitterPoint := func(pt geom.Point) geom.Point {
		dx := (rng.float64()*2 - 1) * jitter
		dy := (rng.float64()*2 - 1) * jitter
		return geom.Point{X: pt.X + dx, Y: pt.Y + dy}
	}

	var out geom.Polyline
	for i, pt := range p {
		out = append(out, jitterPoint(pt))
		if i < len(p)-1 && rng.float64() < 0.3 {
			mid := geom.Lerp(p[i], p[i+1], 0.5)
			out = append(out, jitterPoint(mid))
		}
	}
	return out
}
