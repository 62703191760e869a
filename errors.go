package lineclip

import "errors"

// Errors returned by Clip, NewClipper and ViewportTransform.
// They are wrapped with context; test for them with errors.Is.
var (
	// ErrInvalidWindow is returned when a window has inverted or
	// non-finite bounds.
	ErrInvalidWindow = errors.New("lineclip: invalid window")

	// ErrDegenerateSegment is returned when an intersection would divide
	// by zero because the segment has no extent along the axis of the
	// boundary being clipped.
	ErrDegenerateSegment = errors.New("lineclip: degenerate segment")

	// ErrNonFinitePoint is returned when a segment endpoint, or a computed
	// boundary crossing, is NaN or Inf.
	ErrNonFinitePoint = errors.New("lineclip: non-finite point")

	// ErrNoConvergence is returned when the clip loop exceeds its step bound.
	ErrNoConvergence = errors.New("lineclip: clipping did not converge")

	// ErrInvalidViewport is returned when a world window cannot be mapped
	// onto a device window.
	ErrInvalidViewport = errors.New("lineclip: invalid viewport")
)
