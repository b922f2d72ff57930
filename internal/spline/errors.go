package spline

import "errors"

// Configuration errors returned by the constructors.
var (
	// ErrLengthMismatch indicates arguments, values and tangents do not
	// all have the same length.
	ErrLengthMismatch = errors.New("spline: arguments, values and tangents must have equal length")

	// ErrTooFewPoints indicates fewer than two control points.
	ErrTooFewPoints = errors.New("spline: at least two control points required")

	// ErrSingularSystem indicates the tangent system could not be
	// solved. Wraps the solver error.
	ErrSingularSystem = errors.New("spline: singular tangent system")
)
