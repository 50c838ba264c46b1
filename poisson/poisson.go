// Package poisson implements Bridson's algorithm for 2D Poisson-disk
// sampling: a random point set with a guaranteed minimum distance
// between any two samples.
package poisson

import (
	"math"
	"math/rand"
)

// Params configures a sampling run.
type Params struct {
	Width, Height int
	MinDist       float64
	MaxDist       float64
	K             int // candidate attempts per active sample
	Target        int // stop once this many samples exist
}

type point struct{ x, y float64 }

// Sample generates Poisson-disk-distributed points over [0,Width)×
// [0,Height) using rng for all randomness.
func Sample(p Params, rng *rand.Rand) []struct{ X, Y float64 } {
	if p.Width <= 0 || p.Height <= 0 || p.MinDist <= 0 || p.Target <= 0 {
		return nil
	}
	cellSize := p.MinDist / math.Sqrt2
	gw := int(float64(p.Width)/cellSize) + 1
	gh := int(float64(p.Height)/cellSize) + 1
	grid := make([]int, gw*gh)
	for i := range grid {
		grid[i] = -1
	}
	cellOf := func(x, y float64) (int, int) {
		return int(x / cellSize), int(y / cellSize)
	}

	var samples []point
	active := []int{}

	add := func(pt point) {
		idx := len(samples)
		samples = append(samples, pt)
		active = append(active, idx)
		cx, cy := cellOf(pt.x, pt.y)
		grid[cy*gw+cx] = idx
	}

	farEnough := func(pt point) bool {
		cx, cy := cellOf(pt.x, pt.y)
		for gy := cy - 2; gy <= cy+2; gy++ {
			if gy < 0 || gy >= gh {
				continue
			}
			for gx := cx - 2; gx <= cx+2; gx++ {
				if gx < 0 || gx >= gw {
					continue
				}
				idx := grid[gy*gw+gx]
				if idx < 0 {
					continue
				}
				other := samples[idx]
				dx, dy := other.x-pt.x, other.y-pt.y
				if dx*dx+dy*dy < p.MinDist*p.MinDist {
					return false
				}
			}
		}
		return true
	}

	first := point{x: rng.Float64() * float64(p.Width), y: rng.Float64() * float64(p.Height)}
	add(first)

	k := p.K
	if k <= 0 {
		k = 30
	}

	for len(active) > 0 && len(samples) < p.Target {
		ai := rng.Intn(len(active))
		base := samples[active[ai]]

		placed := false
		for attempt := 0; attempt < k; attempt++ {
			radius := p.MinDist + rng.Float64()*(p.MaxDist-p.MinDist)
			angle := rng.Float64() * 2 * math.Pi
			cand := point{
				x: base.x + radius*math.Cos(angle),
				y: base.y + radius*math.Sin(angle),
			}
			if cand.x < 0 || cand.y < 0 || cand.x >= float64(p.Width) || cand.y >= float64(p.Height) {
				continue
			}
			if !farEnough(cand) {
				continue
			}
			add(cand)
			placed = true
			if len(samples) >= p.Target {
				break
			}
			break
		}
		if !placed {
			// Remove ai from the active list (order doesn't matter).
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	out := make([]struct{ X, Y float64 }, len(samples))
	for i, s := range samples {
		out[i] = struct{ X, Y float64 }{s.x, s.y}
	}
	return out
}
