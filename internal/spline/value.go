package spline

import "math"

// Value constrains the control-point value type to a vector space over
// float64 with component access. Implementations must treat values as
// immutable: every operation returns a fresh value.
//
// FromComponents lifts a component slice back into a T; the receiver
// only selects the implementation and its state is ignored. The slice
// must be copied, not aliased.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
	At(i int) float64
	Dim() int
	Norm() float64
	FromComponents([]float64) T
}

// Vec is a slice-backed N-dimensional vector.
type Vec []float64

func (v Vec) Add(other Vec) Vec {
	result := make(Vec, len(v))
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

func (v Vec) Sub(other Vec) Vec {
	result := make(Vec, len(v))
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

func (v Vec) Scale(factor float64) Vec {
	result := make(Vec, len(v))
	for i := range v {
		result[i] = v[i] * factor
	}
	return result
}

func (v Vec) At(i int) float64 { return v[i] }

func (v Vec) Dim() int { return len(v) }

func (v Vec) Norm() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}
	return math.Sqrt(sum)
}

func (Vec) FromComponents(c []float64) Vec {
	result := make(Vec, len(c))
	copy(result, c)
	return result
}

func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)
	return c
}

// IsValid reports whether no component is NaN or infinite.
func (v Vec) IsValid() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Scalar is the one-dimensional value type.
type Scalar float64

func (s Scalar) Add(other Scalar) Scalar { return s + other }
func (s Scalar) Sub(other Scalar) Scalar { return s - other }
func (s Scalar) Scale(f float64) Scalar  { return s * Scalar(f) }
func (s Scalar) At(int) float64          { return float64(s) }
func (Scalar) Dim() int                  { return 1 }
func (s Scalar) Norm() float64           { return math.Abs(float64(s)) }

func (Scalar) FromComponents(c []float64) Scalar {
	return Scalar(c[0])
}

var (
	_ Value[Vec]    = Vec{}
	_ Value[Scalar] = Scalar(0)
)
