package lineclip

import "strings"

// OutCode is the Cohen-Sutherland region code of a point relative to a
// Window. Each set bit names a window edge the point lies beyond.
//
// At most one of Left/Right and at most one of Bottom/Top is ever set.
type OutCode uint8

// Outcode flags.
const (
	Inside OutCode = 0
	Left   OutCode = 1
	Right  OutCode = 2
	Bottom OutCode = 4
	Top    OutCode = 8
)

// Has reports whether every bit of flag is set in c.
func (c OutCode) Has(flag OutCode) bool {
	return c&flag == flag && flag != Inside
}

// String returns the set flags joined with '|', or "INSIDE".
func (c OutCode) String() string {
	if c == Inside {
		return "INSIDE"
	}
	var parts []string
	// Same order the clipper resolves boundaries in.
	for _, f := range [...]struct {
		flag OutCode
		name string
	}{{Top, "TOP"}, {Bottom, "BOTTOM"}, {Right, "RIGHT"}, {Left, "LEFT"}} {
		if c.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// Classify computes the outcode of p against w.
//
// The window is closed: a coordinate equal to a bound is inside on that axis.
// Classify does not validate w; with an inverted window the result is
// meaningless but still deterministic.
func Classify(p Point, w Window) OutCode {
	code := Inside

	if p.X < w.XMin {
		code |= Left
	} else if p.X > w.XMax {
		code |= Right
	}

	if p.Y < w.YMin {
		code |= Bottom
	} else if p.Y > w.YMax {
		code |= Top
	}

	return code
}
