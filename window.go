package lineclip

import "fmt"

// Window is an axis-aligned clip rectangle given by its inclusive bounds.
//
// Y grows upwards: YMax is the top edge and YMin the bottom edge. A window
// with XMin > XMax or YMin > YMax is malformed; see Validate.
type Window struct {
	XMin, YMin float64
	XMax, YMax float64
}

// NewWindow creates a Window and validates it.
func NewWindow(xmin, ymin, xmax, ymax float64) (Window, error) {
	w := Window{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate returns an error wrapping ErrInvalidWindow if the bounds are
// not finite or are inverted on either axis.
// Zero-width and zero-height windows are valid.
func (w Window) Validate() error {
	if !isFinite(w.XMin) || !isFinite(w.YMin) || !isFinite(w.XMax) || !isFinite(w.YMax) {
		return fmt.Errorf("%w: non-finite bounds %v", ErrInvalidWindow, w)
	}
	if w.XMin > w.XMax {
		return fmt.Errorf("%w: x_min %g > x_max %g", ErrInvalidWindow, w.XMin, w.XMax)
	}
	if w.YMin > w.YMax {
		return fmt.Errorf("%w: y_min %g > y_max %g", ErrInvalidWindow, w.YMin, w.YMax)
	}
	return nil
}

// Width returns XMax - XMin.
func (w Window) Width() float64 {
	return w.XMax - w.XMin
}

// Height returns YMax - YMin.
func (w Window) Height() float64 {
	return w.YMax - w.YMin
}

// Center returns the midpoint of the window.
func (w Window) Center() Point {
	return Point{X: (w.XMin + w.XMax) / 2, Y: (w.YMin + w.YMax) / 2}
}

// Contains returns true if the point is inside the window or on its edge.
func (w Window) Contains(p Point) bool {
	return p.X >= w.XMin && p.X <= w.XMax && p.Y >= w.YMin && p.Y <= w.YMax
}

// String returns the window as "[xmin, ymin, xmax, ymax]".
func (w Window) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", w.XMin, w.YMin, w.XMax, w.YMax)
}
