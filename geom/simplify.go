package geom

// Simplify reduces p with the Douglas–Peucker algorithm: it finds the
// point of maximum perpendicular distance to the chord (p.Start(),
// p.End()); if that maximum exceeds eps, it recurses on both halves
// and splices the results, otherwise it collapses to the two
// endpoints. Input of 2 or fewer points is returned verbatim (as a
// clone). The result always has at least 2 points when p does.
func Simplify(p Polyline, eps float64) Polyline {
	if len(p) <= 2 {
		return p.Clone()
	}
	start, end := p[0], p[len(p)-1]
	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(p)-1; i++ {
		d := PerpendicularDistance(p[i], start, end)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}
	if maxDist <= eps {
		return Polyline{start, end}
	}
	left := Simplify(p[:maxIdx+1], eps)
	right := Simplify(p[maxIdx:], eps)
	// left's last point and right's first point are both p[maxIdx];
	// splice without duplicating it.
	out := make(Polyline, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}
