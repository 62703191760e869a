package lineclip

// Matrix is the affine map used by ViewportTransform:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// B and D stay zero for the axis-aligned maps built here; they are kept so
// that a composed Matrix is still a general affine transform.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate returns a map that shifts points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a map that scales x by sx and y by sy about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Multiply composes two maps. The result applies next first, then m, so
// Translate(c).Multiply(Scale(s)) scales before shifting.
func (m Matrix) Multiply(next Matrix) Matrix {
	return Matrix{
		A: m.A*next.A + m.B*next.D,
		B: m.A*next.B + m.B*next.E,
		C: m.A*next.C + m.B*next.F + m.C,
		D: m.D*next.A + m.E*next.D,
		E: m.D*next.B + m.E*next.E,
		F: m.D*next.C + m.E*next.F + m.F,
	}
}

// TransformPoint maps p.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformSegment maps both endpoints of s, keeping their order.
func (m Matrix) TransformSegment(s Segment) Segment {
	return Segment{P1: m.TransformPoint(s.P1), P2: m.TransformPoint(s.P2)}
}
