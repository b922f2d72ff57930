package spline

import (
	"math"
	"testing"
)

func TestVec_Arithmetic(t *testing.T) {
	a := Vec{1, 2, 3}
	b := Vec{4, 5, 6}

	sum := a.Add(b)
	if sum[0] != 5 || sum[1] != 7 || sum[2] != 9 {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff[0] != 3 || diff[1] != 3 || diff[2] != 3 {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled[0] != 2 || scaled[1] != 4 || scaled[2] != 6 {
		t.Errorf("Scale failed: got %v", scaled)
	}

	// Operands must be untouched.
	if a[0] != 1 || b[0] != 4 {
		t.Errorf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestVec_Norm(t *testing.T) {
	tests := []struct {
		v        Vec
		expected float64
	}{
		{Vec{3, 4}, 5.0},
		{Vec{1, 0}, 1.0},
		{Vec{0, 0}, 0.0},
		{Vec{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec_FromComponents_Copies(t *testing.T) {
	buf := []float64{1, 2}
	v := Vec{}.FromComponents(buf)
	buf[0] = 99
	if v[0] != 1 {
		t.Errorf("FromComponents aliased its input: got %v", v)
	}
}

func TestVec_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec
		valid bool
	}{
		{"empty", Vec{}, true},
		{"normal", Vec{1.0, 2.0}, true},
		{"with NaN", Vec{1.0, math.NaN()}, false},
		{"with +Inf", Vec{1.0, math.Inf(1)}, false},
		{"with -Inf", Vec{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestScalar_Ops(t *testing.T) {
	a, b := Scalar(3), Scalar(-4)

	if got := a.Add(b); got != -1 {
		t.Errorf("Add = %v, want -1", got)
	}
	if got := a.Sub(b); got != 7 {
		t.Errorf("Sub = %v, want 7", got)
	}
	if got := a.Scale(2); got != 6 {
		t.Errorf("Scale = %v, want 6", got)
	}
	if got := b.Norm(); got != 4 {
		t.Errorf("Norm = %v, want 4", got)
	}
	if got := b.At(0); got != -4 {
		t.Errorf("At(0) = %v, want -4", got)
	}
	if got := a.Dim(); got != 1 {
		t.Errorf("Dim = %v, want 1", got)
	}
	if got := Scalar(0).FromComponents([]float64{2.5}); got != 2.5 {
		t.Errorf("FromComponents = %v, want 2.5", got)
	}
}
