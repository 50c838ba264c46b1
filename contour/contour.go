// Package contour extracts the boundaries of a raster.Mask as
// polylines, in the style of a CHAIN_APPROX_SIMPLE contour tracer: it
// emits only the corner/vertex points of the piecewise-axis-aligned
// boundary runs, not every pixel along a straight edge.
//
// The tracer walks the lattice of pixel corners rather than pixel
// centers. At each corner, the four surrounding pixels determine which
// of the corner's four unit edges (up/down/left/right) separate a
// mask pixel from a non-mask pixel; following those edges traces the
// boundary of the underlying region. A corner touched by exactly two
// boundary edges has one way through; a corner touched by all four
// (a diagonal "saddle", where opposite pixels match and adjacent ones
// don't) is resolved by keeping the two diagonals' boundaries from
// crossing.
//
// Every closed loop found this way — including the boundary of a hole
// inside a larger region — is reported; the tracer does not attempt
// to classify loops as outer boundaries versus holes (documented
// limitation: a mask with holes yields one extra contour per hole,
// rather than suppressing it the way a true external-contour-only
// extractor would).
package contour

import "vectorplot.dev/geom"

type direction uint8

const (
	up direction = iota
	right
	down
	left
)

func (d direction) opposite() direction {
	return (d + 2) % 4
}

func (d direction) delta() (dx, dy int) {
	switch d {
	case up:
		return 0, -1
	case down:
		return 0, 1
	case left:
		return -1, 0
	default:
		return 1, 0
	}
}

// In is the read-only pixel predicate a Mask satisfies: true inside,
// false outside (including out of bounds).
type In interface {
	In(x, y int) bool
}

// Extract returns every closed boundary loop of m, each as a polyline
// in pixel-corner coordinates (range [0,width]×[0,height]), in the
// order the tracer's row-major corner scan discovers them.
func Extract(m In, width, height int) []geom.Polyline {
	pixel := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return m.In(x, y)
	}

	visited := make(map[[2]int]map[direction]bool)
	isVisited := func(cx, cy int, d direction) bool {
		return visited[[2]int{cx, cy}][d]
	}
	markVisited := func(cx, cy int, d direction) {
		key := [2]int{cx, cy}
		if visited[key] == nil {
			visited[key] = make(map[direction]bool, 4)
		}
		visited[key][d] = true
	}

	// edges reports which of the 4 directions lead along a boundary
	// edge from corner (cx,cy), given the 2x2 pixel neighborhood
	// a (upper-left), b (upper-right), c (lower-left), d (lower-right).
	edges := func(cx, cy int) (a, b, c, d bool, dirs []direction) {
		a = pixel(cx-1, cy-1)
		b = pixel(cx, cy-1)
		c = pixel(cx-1, cy)
		d = pixel(cx, cy)
		if a != b {
			dirs = append(dirs, up)
		}
		if c != d {
			dirs = append(dirs, down)
		}
		if a != c {
			dirs = append(dirs, left)
		}
		if b != d {
			dirs = append(dirs, right)
		}
		return
	}

	var loops []geom.Polyline
	maxSteps := 4 * (width + 1) * (height + 1)

	for cy := 0; cy <= height; cy++ {
		for cx := 0; cx <= width; cx++ {
			_, _, _, _, dirs := edges(cx, cy)
			var start direction
			found := false
			for _, d := range dirs {
				if !isVisited(cx, cy, d) {
					start = d
					found = true
					break
				}
			}
			if !found {
				continue
			}
			loop := traceLoop(pixel, isVisited, markVisited, edges, cx, cy, start, maxSteps)
			if len(loop) >= 3 {
				loops = append(loops, loop)
			}
		}
	}
	return loops
}

func traceLoop(
	pixel func(x, y int) bool,
	isVisited func(cx, cy int, d direction) bool,
	markVisited func(cx, cy int, d direction),
	edges func(cx, cy int) (a, b, c, d bool, dirs []direction),
	startX, startY int,
	startDir direction,
	maxSteps int,
) geom.Polyline {
	corners := []geom.Point{{X: float64(startX), Y: float64(startY)}}

	cx, cy := startX, startY
	d := startDir
	for steps := 0; steps < maxSteps; steps++ {
		markVisited(cx, cy, d)
		dx, dy := d.delta()
		nx, ny := cx+dx, cy+dy
		markVisited(nx, ny, d.opposite())
		corners = append(corners, geom.Point{X: float64(nx), Y: float64(ny)})
		if nx == startX && ny == startY {
			return compressCollinear(corners)
		}

		a, _, _, dd, dirs := edges(nx, ny)
		cameFrom := d.opposite()
		next, ok := chooseNext(a, dd, cameFrom, dirs)
		if !ok {
			// Dead end: shouldn't happen for a well-formed boundary,
			// but terminate cleanly rather than loop forever.
			return nil
		}
		cx, cy, d = nx, ny, next
	}
	return nil
}

// chooseNext picks the outgoing direction at a corner whose existing
// edge set is dirs, having arrived via cameFrom. a and dd are the
// corner's upper-left and lower-right pixels, used to resolve the
// 4-edge saddle case.
func chooseNext(a, dd bool, cameFrom direction, dirs []direction) (direction, bool) {
	set := map[direction]bool{}
	for _, d := range dirs {
		set[d] = true
	}
	if !set[cameFrom] {
		return 0, false
	}
	switch len(dirs) {
	case 2:
		for _, d := range dirs {
			if d != cameFrom {
				return d, true
			}
		}
		return 0, false
	case 4:
		var pair map[direction]direction
		if a == dd {
			pair = map[direction]direction{up: left, left: up, down: right, right: down}
		} else {
			pair = map[direction]direction{up: right, right: up, down: left, left: down}
		}
		return pair[cameFrom], true
	default:
		return 0, false
	}
}

// compressCollinear keeps only the points where the walk's direction
// changes, dropping interior points of a straight run, and drops the
// duplicated closing point.
func compressCollinear(corners []geom.Point) geom.Polyline {
	n := len(corners) - 1 // corners[0] == corners[n], closing duplicate
	if n < 3 {
		return nil
	}
	pts := corners[:n]
	var out geom.Polyline
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		d1x, d1y := cur.X-prev.X, cur.Y-prev.Y
		d2x, d2y := next.X-cur.X, next.Y-cur.Y
		if d1x != d2x || d1y != d2y {
			out = append(out, cur)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
