package spline

// Kind selects the boundary policy of a spline. It governs both how
// missing tangents are computed and how evaluation continues outside
// the sampled domain.
type Kind int

const (
	// KindNatural leaves the ends free (vanishing second derivative)
	// and extrapolates by extending the end segments' cubics.
	KindNatural Kind = iota
	// KindClamped fixes the end tangents and extrapolates linearly
	// along them.
	KindClamped
	// KindPeriodic closes the curve into a loop and wraps out-of-domain
	// arguments around it.
	KindPeriodic
)

func (k Kind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindClamped:
		return "clamped"
	case KindPeriodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Condition is a boundary condition, fixed at construction time. For
// KindClamped it carries the end tangents; for the other kinds the
// tangent fields are unused.
type Condition[T Value[T]] struct {
	kind       Kind
	start, end T
}

// Natural returns the free-end boundary condition.
func Natural[T Value[T]]() Condition[T] {
	return Condition[T]{kind: KindNatural}
}

// Clamped returns the fixed-tangent boundary condition with the given
// start and end tangents.
func Clamped[T Value[T]](start, end T) Condition[T] {
	return Condition[T]{kind: KindClamped, start: start, end: end}
}

// Periodic returns the closed-loop boundary condition.
func Periodic[T Value[T]]() Condition[T] {
	return Condition[T]{kind: KindPeriodic}
}

// Kind reports the policy of the condition.
func (c Condition[T]) Kind() Kind { return c.kind }
