package lineclip

import "fmt"

// Segment is a line segment between two endpoints.
//
// Clipping is symmetric in the endpoints but preserves their order: the
// clipped P1 always derives from the input P1.
type Segment struct {
	P1, P2 Point
}

// Seg creates a Segment from endpoint coordinates.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{P1: Point{X: x1, Y: y1}, P2: Point{X: x2, Y: y2}}
}

// Reversed returns the segment with its endpoints swapped.
func (s Segment) Reversed() Segment {
	return Segment{P1: s.P2, P2: s.P1}
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return s.P1 == s.P2
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// SameEndpoints reports whether s and other have the same endpoints within
// eps, in either order.
func (s Segment) SameEndpoints(other Segment, eps float64) bool {
	if s.P1.Equal(other.P1, eps) && s.P2.Equal(other.P2, eps) {
		return true
	}
	return s.P1.Equal(other.P2, eps) && s.P2.Equal(other.P1, eps)
}

// String returns the segment as "(x1, y1) -> (x2, y2)".
func (s Segment) String() string {
	return fmt.Sprintf("%v -> %v", s.P1, s.P2)
}
