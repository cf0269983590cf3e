package geom

// Status is the outcome of an exact-sign barycentric inclusion test.
type Status int

const (
	// StatusSuccess indicates p lies inside (or on the boundary of) the
	// triangle: all three oriented-area signs agree (nonzero ones, at
	// least).
	StatusSuccess Status = iota
	// StatusDegenerate indicates all three oriented areas are exactly zero
	// (the triangle itself is degenerate, or p coincides with it in a
	// degenerate way).
	StatusDegenerate
	// StatusOutside indicates the nonzero oriented-area signs disagree: p
	// lies strictly outside the triangle.
	StatusOutside
)

// OrienTri returns the signed area of triangle (a,b,c,p)'s implied
// sub-triangle — the twice-area of (a,b,p). It is the "high-precision
// orienTri primitive" spec.md §4.9 calls for; in pure Go this core uses
// double-precision Area2D rather than a multi-limb exact predicate, since
// the driver's tolerances (ANGTOL, eps2) already operate well above
// float64 rounding noise for the triangle sizes this core targets.
func OrienTri(a, b, p Vec2) float64 {
	return Area2D(a, b, p)
}

// InTriExact implements spec.md §4.9's inTriExact: given a triangle
// (t1,t2,t3) and a point p, compute the three oriented sub-triangle signed
// areas w[0..2] = (Area2D(t2,t3,p), Area2D(t3,t1,p), Area2D(t1,t2,p)).
// Returns StatusSuccess if all three signs agree (or any are zero and the
// nonzero ones agree), StatusDegenerate if all three are zero, and
// StatusOutside otherwise. Whenever the three components have a nonzero
// sum, whatever the status, w is normalized so they sum to 1.
func InTriExact(t1, t2, t3, p Vec2) (Status, [3]float64) {
	w := [3]float64{
		OrienTri(t2, t3, p),
		OrienTri(t3, t1, p),
		OrienTri(t1, t2, p),
	}

	var pos, neg, zero int
	for _, wi := range w {
		switch {
		case wi > 0:
			pos++
		case wi < 0:
			neg++
		default:
			zero++
		}
	}

	var status Status
	switch {
	case zero == 3:
		status = StatusDegenerate
	case pos > 0 && neg > 0:
		status = StatusOutside
	default:
		status = StatusSuccess
	}

	sum := w[0] + w[1] + w[2]
	if sum != 0 {
		w[0] /= sum
		w[1] /= sum
		w[2] /= sum
	}
	return status, w
}

// MinWeight returns the smallest of the three barycentric weights — used by
// the barycentric locator (spec.md §4.9) to rank the "least-negative" frame
// triangle when no exact containment is found.
func MinWeight(w [3]float64) float64 {
	m := w[0]
	if w[1] < m {
		m = w[1]
	}
	if w[2] < m {
		m = w[2]
	}
	return m
}
