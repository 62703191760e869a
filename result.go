package lineclip

// Result is the outcome of clipping one segment: either accepted with the
// visible part of the segment, or rejected with no geometry.
//
// The zero value is a rejection.
type Result struct {
	seg      Segment
	accepted bool
}

// Accepted returns a Result carrying the visible segment.
func Accepted(seg Segment) Result {
	return Result{seg: seg, accepted: true}
}

// Rejected returns a Result for a segment with no visible part.
func Rejected() Result {
	return Result{}
}

// IsAccepted reports whether some part of the segment is visible.
func (r Result) IsAccepted() bool {
	return r.accepted
}

// IsRejected reports whether the segment lies entirely outside the window.
func (r Result) IsRejected() bool {
	return !r.accepted
}

// Segment returns the clipped segment and true, or the zero Segment and
// false for a rejection.
func (r Result) Segment() (Segment, bool) {
	return r.seg, r.accepted
}

// String returns "accepted <segment>" or "rejected".
func (r Result) String() string {
	if !r.accepted {
		return "rejected"
	}
	return "accepted " + r.seg.String()
}
