package spline

import (
	"fmt"

	"github.com/san-kum/splinekit/internal/tridiag"
)

// solveTangents computes the per-point tangents that give the
// piecewise cubic a continuous second derivative at the interior
// control points. One linear system is solved per spatial dimension;
// all dimensions share the same coefficient matrix, which depends only
// on the boundary policy and the point count.
//
// The system is knot-spacing-blind: tangents are per unit local
// parameter of each segment, so only value differences enter the
// right-hand side.
func solveTangents[T Value[T]](values []T, cond Condition[T]) ([]T, error) {
	n := len(values)
	dim := values[0].Dim()

	var solver tridiag.Solver
	switch cond.kind {
	case KindClamped:
		solver = tridiag.Clamped(n)
	case KindPeriodic:
		solver = tridiag.Cyclic(n)
	default:
		solver = tridiag.Natural(n)
	}

	perDim := make([][]float64, dim)
	rhs := make([]float64, n)
	for d := 0; d < dim; d++ {
		for i := 1; i < n-1; i++ {
			rhs[i] = 3 * (values[i+1].At(d) - values[i-1].At(d))
		}
		switch cond.kind {
		case KindClamped:
			rhs[0] = cond.start.At(d)
			rhs[n-1] = cond.end.At(d)
		case KindPeriodic:
			rhs[0] = 3 * (values[1].At(d) - values[n-1].At(d))
			rhs[n-1] = 3 * (values[0].At(d) - values[n-2].At(d))
		default:
			rhs[0] = 3 * (values[1].At(d) - values[0].At(d))
			rhs[n-1] = 3 * (values[n-1].At(d) - values[n-2].At(d))
		}

		sol, err := solver.Solve(rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: dimension %d: %v", ErrSingularSystem, d, err)
		}
		perDim[d] = sol
	}

	tangents := make([]T, n)
	buf := make([]float64, dim)
	for i := 0; i < n; i++ {
		for d := 0; d < dim; d++ {
			buf[d] = perDim[d][i]
		}
		tangents[i] = values[0].FromComponents(buf)
	}
	return tangents, nil
}
