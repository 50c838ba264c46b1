package geom

// Polyline is a non-empty ordered sequence of points, interpreted as a
// connected open polyline (no implicit closing edge). A Polyline with
// fewer than 2 points is not a drawable path; callers that build one
// up incrementally should check Drawable() before emitting it.
type Polyline []Point

// Start returns the first point. Panics on an empty polyline, the
// same way as indexing an empty slice would.
func (p Polyline) Start() Point {
	return p[0]
}

// End returns the last point.
func (p Polyline) End() Point {
	return p[len(p)-1]
}

// Drawable reports whether p has at least 2 points.
func (p Polyline) Drawable() bool {
	return len(p) >= 2
}

// Reverse returns a new polyline with points in reverse order. p is
// not modified.
func (p Polyline) Reverse() Polyline {
	r := make(Polyline, len(p))
	for i, pt := range p {
		r[len(p)-1-i] = pt
	}
	return r
}

// Clone returns an independent copy of p.
func (p Polyline) Clone() Polyline {
	c := make(Polyline, len(p))
	copy(c, p)
	return c
}

// Length returns the total length of the polyline's segments.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += Distance(p[i-1], p[i])
	}
	return total
}
