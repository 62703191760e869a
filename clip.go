package lineclip

import (
	"fmt"
	"log/slog"
)

// maxClipSteps bounds the endpoint replacements of one Clip call.
// In exact arithmetic each endpoint is replaced at most once per boundary;
// the extra room absorbs rounding at window corners. Tests lower it.
var maxClipSteps = 16

// Boundary identifies one edge of a clip window.
type Boundary uint8

// Window boundaries, in the order the clipper resolves them.
const (
	BoundaryTop Boundary = iota
	BoundaryBottom
	BoundaryRight
	BoundaryLeft
)

// String returns the boundary name.
func (b Boundary) String() string {
	switch b {
	case BoundaryTop:
		return "top"
	case BoundaryBottom:
		return "bottom"
	case BoundaryRight:
		return "right"
	case BoundaryLeft:
		return "left"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

// boundaryFor selects the single boundary to clip an outside point against.
// The order TOP, BOTTOM, RIGHT, LEFT is fixed: a TOP|LEFT point is clipped
// to the top edge first and to the left edge on a later step if needed.
func boundaryFor(code OutCode) (Boundary, bool) {
	switch {
	case code&Top != 0:
		return BoundaryTop, true
	case code&Bottom != 0:
		return BoundaryBottom, true
	case code&Right != 0:
		return BoundaryRight, true
	case code&Left != 0:
		return BoundaryLeft, true
	default:
		return 0, false
	}
}

// Step describes one endpoint replacement made by the clip loop.
type Step struct {
	Index    int      // zero-based replacement count within one Clip call
	Endpoint int      // 1 or 2
	Boundary Boundary // edge the endpoint was moved onto
	From, To Point
}

// String returns a one-line description of the step.
func (s Step) String() string {
	return fmt.Sprintf("step %d: p%d %v -> %v (%v)", s.Index, s.Endpoint, s.From, s.To, s.Boundary)
}

// Clipper clips segments against one validated window.
// A Clipper holds no mutable state and is safe for concurrent use as long as
// its step hook is.
type Clipper struct {
	window Window
	logger *slog.Logger
	onStep func(Step)
}

// NewClipper creates a clipper for the given window.
// It returns an error wrapping ErrInvalidWindow if the window is malformed.
func NewClipper(w Window, opts ...ClipperOption) (*Clipper, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Clipper{window: w, logger: o.logger, onStep: o.onStep}, nil
}

// Window returns the clip window.
func (c *Clipper) Window() Window {
	return c.window
}

// Classify computes the outcode of p against the clipper's window.
func (c *Clipper) Classify(p Point) OutCode {
	return Classify(p, c.window)
}

func (c *Clipper) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Clip computes the visible part of seg with the Cohen-Sutherland algorithm.
//
// Both endpoints are classified; if both are inside the segment is accepted,
// if both share an outside bit it is rejected. Otherwise the first outside
// endpoint is moved onto one window boundary and the loop repeats. Endpoint
// order is preserved in the accepted segment.
func (c *Clipper) Clip(seg Segment) (Result, error) {
	log := c.log()
	if !seg.P1.IsFinite() || !seg.P2.IsFinite() {
		log.Warn("lineclip: refusing segment", "segment", seg, "error", ErrNonFinitePoint)
		return Result{}, fmt.Errorf("%w: %v", ErrNonFinitePoint, seg)
	}

	p1, p2 := seg.P1, seg.P2
	code1 := Classify(p1, c.window)
	code2 := Classify(p2, c.window)

	for step := 0; ; step++ {
		if code1|code2 == Inside {
			log.Debug("lineclip: accept", "segment", seg, "clipped", Segment{P1: p1, P2: p2}, "steps", step)
			return Accepted(Segment{P1: p1, P2: p2}), nil
		}
		if code1&code2 != 0 {
			log.Debug("lineclip: reject", "segment", seg, "code1", code1, "code2", code2, "steps", step)
			return Rejected(), nil
		}
		if step == maxClipSteps {
			log.Warn("lineclip: step bound exceeded", "segment", seg, "window", c.window)
			return Result{}, fmt.Errorf("%w: %v against %v after %d steps", ErrNoConvergence, seg, c.window, step)
		}

		endpoint, codeOut := 1, code1
		if codeOut == Inside {
			endpoint, codeOut = 2, code2
		}
		b, _ := boundaryFor(codeOut)

		p, err := intersect(p1, p2, b, c.window)
		if err != nil {
			log.Warn("lineclip: refusing segment", "segment", seg, "boundary", b, "error", err)
			return Result{}, err
		}

		var from Point
		if endpoint == 1 {
			from, p1 = p1, p
			code1 = Classify(p1, c.window)
		} else {
			from, p2 = p2, p
			code2 = Classify(p2, c.window)
		}

		log.Debug("lineclip: clip step", "step", step, "endpoint", endpoint, "boundary", b, "from", from, "to", p)
		if c.onStep != nil {
			c.onStep(Step{Index: step, Endpoint: endpoint, Boundary: b, From: from, To: p})
		}
	}
}

// intersect returns the point where the line through p1 and p2 crosses
// boundary b of w. p1 and p2 are the current working endpoints.
func intersect(p1, p2 Point, b Boundary, w Window) (Point, error) {
	var p Point
	switch b {
	case BoundaryTop, BoundaryBottom:
		if p2.Y == p1.Y {
			return Point{}, fmt.Errorf("%w: %v has no vertical extent to reach the %v edge",
				ErrDegenerateSegment, Segment{P1: p1, P2: p2}, b)
		}
		y := w.YMax
		if b == BoundaryBottom {
			y = w.YMin
		}
		p = Point{X: along(p1.X, p2.X, param(p1.Y, p2.Y, y)), Y: y}

	case BoundaryRight, BoundaryLeft:
		if p2.X == p1.X {
			return Point{}, fmt.Errorf("%w: %v has no horizontal extent to reach the %v edge",
				ErrDegenerateSegment, Segment{P1: p1, P2: p2}, b)
		}
		x := w.XMax
		if b == BoundaryLeft {
			x = w.XMin
		}
		p = Point{X: x, Y: along(p1.Y, p2.Y, param(p1.X, p2.X, x))}

	default:
		return Point{}, fmt.Errorf("lineclip: unknown boundary %v", b)
	}

	if !p.IsFinite() {
		return Point{}, fmt.Errorf("%w: %v crosses the %v edge at %v",
			ErrNonFinitePoint, Segment{P1: p1, P2: p2}, b, p)
	}
	return p, nil
}

// param returns t such that a + (b-a)*t == v. a and b must differ.
// Differences of finite values can overflow, so they fall back to halves,
// which cannot.
func param(a, b, v float64) float64 {
	d, n := b-a, v-a
	if isFinite(d) && isFinite(n) {
		return n / d
	}
	return (v/2 - a/2) / (b/2 - a/2)
}

// along returns a + (b-a)*t. For t in [0, 1] the result lies between a and
// b even when b-a overflows.
func along(a, b, t float64) float64 {
	if d := b - a; isFinite(d) {
		return a + d*t
	}
	return a*(1-t) + b*t
}

// Clip clips seg against w and returns the visible part.
//
// It returns an error wrapping ErrInvalidWindow for a malformed window,
// ErrNonFinitePoint for NaN or infinite endpoints and ErrDegenerateSegment
// if an intersection would divide by zero. Clip is safe for concurrent use.
func Clip(seg Segment, w Window) (Result, error) {
	c, err := NewClipper(w)
	if err != nil {
		return Result{}, err
	}
	return c.Clip(seg)
}
