package tridiag

import (
	"math"
	"testing"
)

func residual(apply func(x []float64, i int) float64, x []float64, rhs []float64) float64 {
	max := 0.0
	for i := range rhs {
		max = math.Max(max, math.Abs(apply(x, i)-rhs[i]))
	}
	return max
}

func TestNatural_KnownSystem(t *testing.T) {
	// Free-end tangent system for the values [0,1,0,-1]:
	// rows [2 1; 1 4 1; 1 4 1; 1 2], solution in fifteenths.
	s := Natural(4)
	x, err := s.Solve([]float64{3, 0, -6, -3})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []float64{23.0 / 15, -1.0 / 15, -19.0 / 15, -13.0 / 15}
	for i, w := range want {
		if math.Abs(x[i]-w) > 1e-12 {
			t.Errorf("x[%d] = %v, want %v", i, x[i], w)
		}
	}
}

func TestClamped_EndRowsAreIdentity(t *testing.T) {
	s := Clamped(4)
	x, err := s.Solve([]float64{7, 4, -4, -3})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if math.Abs(x[0]-7) > 1e-12 || math.Abs(x[3]+3) > 1e-12 {
		t.Errorf("end values = %v, %v, want 7, -3", x[0], x[3])
	}
	// Interior rows stay [1 4 1].
	apply := func(x []float64, i int) float64 { return x[i-1] + 4*x[i] + x[i+1] }
	if got := apply(x, 1); math.Abs(got-4) > 1e-10 {
		t.Errorf("row 1 residual: got %v, want 4", got)
	}
	if got := apply(x, 2); math.Abs(got+4) > 1e-10 {
		t.Errorf("row 2 residual: got %v, want -4", got)
	}
}

func TestCyclic_WrapCoupling(t *testing.T) {
	s := Cyclic(3)
	// Row sum is 6 for every row, so a constant rhs of 6 solves to
	// all ones.
	x, err := s.Solve([]float64{6, 6, 6})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, v := range x {
		if math.Abs(v-1) > 1e-12 {
			t.Errorf("x[%d] = %v, want 1", i, v)
		}
	}

	n := 5
	s = Cyclic(n)
	rhs := []float64{3, -1, 0, 2, -4}
	x, err = s.Solve(rhs)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	apply := func(x []float64, i int) float64 {
		return x[(i+n-1)%n] + 4*x[i] + x[(i+1)%n]
	}
	if r := residual(apply, x, rhs); r > 1e-10 {
		t.Errorf("cyclic residual %v too large", r)
	}
}

func TestCyclic_TwoPoints(t *testing.T) {
	// With two points each neighbor term wraps onto the same point:
	// matrix [[4 2],[2 4]].
	s := Cyclic(2)
	x, err := s.Solve([]float64{8, 10})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if math.Abs(x[0]-1) > 1e-12 || math.Abs(x[1]-2) > 1e-12 {
		t.Errorf("x = %v, want [1 2]", x)
	}
}

func TestSolve_SizeMismatch(t *testing.T) {
	s := Natural(3)
	if _, err := s.Solve([]float64{1, 2}); err == nil {
		t.Error("expected error for mismatched rhs length")
	}
	if s.Size() != 3 {
		t.Errorf("Size() = %d, want 3", s.Size())
	}
}
