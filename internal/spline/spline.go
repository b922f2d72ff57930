package spline

import "math"

// Spline is a piecewise cubic through a sequence of control points.
// There is one segment per consecutive pair of points, plus one
// closing segment under the periodic policy. Fully immutable after
// construction.
//
// The argument sequence must be strictly increasing. This is a caller
// precondition and is not validated; violating it yields undefined
// numeric results, not an error.
type Spline[T Value[T]] struct {
	args     []float64
	values   []T
	tangents []T
	segments []Segment[T]
	cond     Condition[T]
	norms    []float64
}

// New builds a spline through values, computing the tangents that make
// the second derivative continuous at interior points under the given
// boundary condition. arguments may be nil, in which case control
// point i sits at argument i.
//
// The tangent system assumes uniformly spaced arguments; non-uniform
// arguments change segment parameterization but not the solve.
func New[T Value[T]](arguments []float64, values []T, cond Condition[T]) (*Spline[T], error) {
	if arguments != nil && len(arguments) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(values) < 2 {
		return nil, ErrTooFewPoints
	}
	if arguments == nil {
		arguments = make([]float64, len(values))
		for i := range arguments {
			arguments[i] = float64(i)
		}
	}
	tangents, err := solveTangents(values, cond)
	if err != nil {
		return nil, err
	}
	return NewWithTangents(arguments, values, tangents, cond)
}

// NewWithTangents builds a spline from fully explicit Hermite data:
// one argument, value and tangent per control point.
func NewWithTangents[T Value[T]](arguments []float64, values, tangents []T, cond Condition[T]) (*Spline[T], error) {
	if len(arguments) != len(values) || len(values) != len(tangents) {
		return nil, ErrLengthMismatch
	}
	n := len(values)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	segCount := n - 1
	if cond.kind == KindPeriodic {
		segCount++
	}
	segments := make([]Segment[T], 0, segCount)
	for i := 0; i+1 < n; i++ {
		segments = append(segments, newSegment(values[i], values[i+1], tangents[i], tangents[i+1]))
	}
	if cond.kind == KindPeriodic {
		segments = append(segments, newSegment(values[n-1], values[0], tangents[n-1], tangents[0]))
	}

	norms := make([]float64, n)
	for i, d := range tangents {
		norms[i] = d.Norm()
	}

	return &Spline[T]{
		args:     arguments,
		values:   values,
		tangents: tangents,
		segments: segments,
		cond:     cond,
		norms:    norms,
	}, nil
}

// Evaluate returns the spline value at t. It is total over all real
// arguments: outside the sampled domain the boundary policy decides
// the continuation (linear extension for clamped, unclamped cubic
// extension for natural, wraparound for periodic). Evaluate never
// mutates the spline.
func (s *Spline[T]) Evaluate(t float64) T {
	n := len(s.args)
	first, last := s.args[0], s.args[n-1]

	if s.cond.kind == KindPeriodic {
		// The closing segment spans one argument unit past the last
		// point, so the full loop period exceeds the argument span by
		// one.
		period := last - first + 1
		if t < first || t >= first+period {
			t = first + math.Mod(t-first, period)
			if t < first {
				t += period
			}
		}
		if t >= last {
			return s.segments[n-1].At(t - last)
		}
	} else if t < first {
		if s.cond.kind == KindClamped {
			return s.values[0].Add(s.cond.start.Scale(t - first))
		}
		return s.segments[0].At((t - first) / (s.args[1] - first))
	} else if t >= last {
		if t == last {
			return s.segments[n-2].At(1)
		}
		if s.cond.kind == KindClamped {
			return s.values[n-1].Add(s.cond.end.Scale(t - last))
		}
		return s.segments[n-2].At((t - s.args[n-2]) / (last - s.args[n-2]))
	}

	for i := 0; i+1 < n; i++ {
		if t >= s.args[i] && t < s.args[i+1] {
			return s.segments[i].At((t - s.args[i]) / (s.args[i+1] - s.args[i]))
		}
	}
	// Rounding can push t past every half-open interval; treat it as
	// the end of the final real segment.
	return s.segments[n-2].At(1)
}

// Sample evaluates the spline at count evenly spaced arguments from
// lo to hi inclusive and returns the arguments alongside the values.
func (s *Spline[T]) Sample(lo, hi float64, count int) ([]float64, []T) {
	if count < 2 {
		count = 2
	}
	args := make([]float64, count)
	out := make([]T, count)
	step := (hi - lo) / float64(count-1)
	for i := 0; i < count; i++ {
		args[i] = lo + float64(i)*step
		out[i] = s.Evaluate(args[i])
	}
	return args, out
}

// Domain returns the first and last control-point arguments.
func (s *Spline[T]) Domain() (lo, hi float64) {
	return s.args[0], s.args[len(s.args)-1]
}

// Arguments returns the control-point argument sequence. The returned
// slice must not be modified.
func (s *Spline[T]) Arguments() []float64 { return s.args }

// Values returns the control values. The returned slice must not be
// modified.
func (s *Spline[T]) Values() []T { return s.values }

// Tangents returns the per-control-point tangents, whether supplied or
// computed. The returned slice must not be modified.
func (s *Spline[T]) Tangents() []T { return s.tangents }

// Segments returns the segment table, including the closing segment
// for periodic splines. The returned slice must not be modified.
func (s *Spline[T]) Segments() []Segment[T] { return s.segments }

// Norms returns the per-control-point tangent magnitudes, exposed for
// diagnostics. The returned slice must not be modified.
func (s *Spline[T]) Norms() []float64 { return s.norms }

// Kind reports the boundary policy.
func (s *Spline[T]) Kind() Kind { return s.cond.kind }

// Dim reports the dimensionality of the value space.
func (s *Spline[T]) Dim() int { return s.values[0].Dim() }
