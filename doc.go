// Package lineclip clips 2D line segments against axis-aligned rectangular
// windows with the Cohen-Sutherland algorithm.
//
// # Overview
//
// Each endpoint of a segment is classified with a 4-bit [OutCode] telling
// which edges of the [Window] it lies beyond. Segments with both endpoints
// inside are accepted as they are, segments whose endpoints share an outside
// bit are rejected, and anything else is shortened one boundary at a time
// until one of those two cases applies.
//
// # Quick Start
//
//	import "github.com/gogpu/lineclip"
//
//	w, err := lineclip.NewWindow(1, 1, 10, 10)
//	if err != nil {
//	    return err
//	}
//	res, err := lineclip.Clip(lineclip.Seg(5, 5, 15, 15), w)
//	if err != nil {
//	    return err
//	}
//	if seg, ok := res.Segment(); ok {
//	    fmt.Println(seg) // (5, 5) -> (10, 10)
//	}
//
// # Coordinate System
//
// Windows use mathematical orientation:
//   - YMax is the TOP edge, YMin the BOTTOM edge
//   - The window is closed: points on an edge are inside
//
// Use [ViewportTransform] with flipY set to map clipped world coordinates
// into image space where Y increases down.
//
// # Boundary Order
//
// A point outside on two axes is clipped against TOP, BOTTOM, RIGHT and
// LEFT in that order, one boundary per step. The order is part of the
// contract: it decides which intermediate points the [Step] hook observes.
//
// # Errors
//
// Malformed windows, non-finite endpoints and intersections that would
// divide by zero are reported as errors wrapping [ErrInvalidWindow],
// [ErrNonFinitePoint] and [ErrDegenerateSegment]. No error is transient.
//
// # Concurrency
//
// [Classify] and [Clip] are pure functions. A [Clipper] holds no mutable
// state and can be shared between goroutines.
package lineclip
