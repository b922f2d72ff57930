package spline

// Segment holds the coefficients of one cubic piece,
//
//	f(t) = A + t·B + t²·C + t³·D
//
// over the local parameter t ∈ [0,1]. Coefficients are derived once
// from the Hermite data of the segment's two endpoints and never
// change afterwards.
type Segment[T Value[T]] struct {
	A, B, C, D T
}

// newSegment builds the cubic through p0 at t=0 and p1 at t=1 with
// endpoint tangents d0 and d1 (per unit local parameter).
func newSegment[T Value[T]](p0, p1, d0, d1 T) Segment[T] {
	return Segment[T]{
		A: p0,
		B: d0,
		C: p1.Sub(p0).Scale(3).Sub(d0.Scale(2)).Sub(d1),
		D: p0.Sub(p1).Scale(2).Add(d0).Add(d1),
	}
}

// At evaluates the cubic at local parameter t. The intended domain is
// [0,1] but the polynomial is total; callers use values outside that
// range for extrapolation.
func (s Segment[T]) At(t float64) T {
	return s.A.Add(s.B.Scale(t)).Add(s.C.Scale(t * t)).Add(s.D.Scale(t * t * t))
}

// Deriv evaluates df/dt at local parameter t.
func (s Segment[T]) Deriv(t float64) T {
	return s.B.Add(s.C.Scale(2 * t)).Add(s.D.Scale(3 * t * t))
}
