// Package spline implements piecewise-cubic Hermite interpolation over
// vector-valued control points.
//
// A [Spline] is built from control values in an N-dimensional value
// space (the scalar case is N=1) and a boundary [Condition]:
//
//   - [Clamped]: tangents at both ends are fixed by the caller
//   - [Natural]: second derivative vanishes at the ends
//   - [Periodic]: the curve closes into a loop
//
// Tangents not supplied by the caller are computed by solving one
// tridiagonal (or cyclic) linear system per spatial dimension; the
// solve itself is delegated to the tridiag package.
//
// # Example
//
//	s, err := spline.New(nil, []spline.Scalar{0, 1, 0, -1}, spline.Natural[spline.Scalar]())
//	if err != nil {
//		...
//	}
//	y := s.Evaluate(1.5)
//
// # Thread Safety
//
// Spline values are immutable after construction and safe for
// concurrent read-only evaluation.
package spline
