// Package tridiag provides the linear-system solvers behind spline
// tangent computation: tridiagonal systems for the open boundary
// policies and a cyclic variant for closed curves, all backed by
// gonum/mat.
package tridiag

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Solver solves A·x = rhs for a fixed coefficient matrix A. The rhs
// length must equal the system size given at construction. Solvers are
// safe for concurrent use: each call works on its own destination.
type Solver interface {
	Size() int
	Solve(rhs []float64) ([]float64, error)
}

// banded is a Solver over a gonum tridiagonal matrix.
type banded struct {
	n   int
	sys *mat.Tridiag
}

func (s *banded) Size() int { return s.n }

func (s *banded) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != s.n {
		return nil, fmt.Errorf("tridiag: rhs length %d does not match system size %d", len(rhs), s.n)
	}
	var x mat.VecDense
	if err := s.sys.SolveVecTo(&x, false, mat.NewVecDense(s.n, rhs)); err != nil {
		return nil, fmt.Errorf("tridiag: solve failed: %w", err)
	}
	out := make([]float64, s.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// dense is a Solver over an LU-factorized dense matrix. Used for the
// cyclic system, whose corner entries break bandedness.
type dense struct {
	n  int
	lu *mat.LU
}

func (s *dense) Size() int { return s.n }

func (s *dense) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != s.n {
		return nil, fmt.Errorf("tridiag: rhs length %d does not match system size %d", len(rhs), s.n)
	}
	var x mat.VecDense
	if err := s.lu.SolveVecTo(&x, false, mat.NewVecDense(s.n, rhs)); err != nil {
		return nil, fmt.Errorf("tridiag: solve failed: %w", err)
	}
	out := make([]float64, s.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// Natural returns the solver for the free-end tangent system of size
// n: interior rows [1 4 1], end rows [2 1] and [1 2].
func Natural(n int) Solver {
	dl, d, du := bands(n, 1, 4, 1)
	d[0], d[n-1] = 2, 2
	return &banded{n: n, sys: mat.NewTridiag(n, dl, d, du)}
}

// Clamped returns the solver for the fixed-tangent system of size n:
// interior rows [1 4 1], identity rows at both ends.
func Clamped(n int) Solver {
	dl, d, du := bands(n, 1, 4, 1)
	d[0], d[n-1] = 1, 1
	du[0], dl[n-2] = 0, 0
	return &banded{n: n, sys: mat.NewTridiag(n, dl, d, du)}
}

// Cyclic returns the solver for the closed-loop tangent system of size
// n: every row is [1 4 1] with the sub- and superdiagonal wrapping
// around the corners.
func Cyclic(n int) Solver {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 4)
		// += rather than Set so the n==2 case, where both neighbors
		// are the same point, accumulates to 2.
		prev, next := (i+n-1)%n, (i+1)%n
		a.Set(i, prev, a.At(i, prev)+1)
		a.Set(i, next, a.At(i, next)+1)
	}
	var lu mat.LU
	lu.Factorize(a)
	return &dense{n: n, lu: &lu}
}

func bands(n int, lo, diag, up float64) (dl, d, du []float64) {
	dl = make([]float64, n-1)
	d = make([]float64, n)
	du = make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		dl[i], du[i] = lo, up
	}
	for i := 0; i < n; i++ {
		d[i] = diag
	}
	return dl, d, du
}
