package lineclip

import "testing"

func TestMatrixConstructors(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"zero translation", Translate(0, 0), Pt(3, -4), Pt(3, -4)},
		{"translation", Translate(10, 20), Pt(3, -4), Pt(13, 16)},
		{"unit scale", Scale(1, 1), Pt(3, -4), Pt(3, -4)},
		{"scale", Scale(2, -0.5), Pt(3, -4), Pt(6, 2)},
		{"zero matrix", Matrix{}, Pt(3, -4), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); got != tt.want {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))

	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 23)
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}

	// Translate first, then scale.
	m = Scale(2, 3).Multiply(Translate(10, 20))
	got = m.TransformPoint(Pt(1, 1))
	want = Pt(22, 63)
	if got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
}

func TestMatrixTransformSegment(t *testing.T) {
	m := Translate(-1, 2)
	got := m.TransformSegment(Seg(0, 0, 3, 4))
	want := Seg(-1, 2, 2, 6)
	if got != want {
		t.Errorf("TransformSegment() = %v, want %v", got, want)
	}
}
