package lineclip

import "testing"

func BenchmarkClassify(b *testing.B) {
	w := Window{XMin: 0, YMin: 0, XMax: 100, YMax: 100}
	pts := []Point{Pt(50, 50), Pt(-10, 50), Pt(150, 150), Pt(50, -1)}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		_ = Classify(pts[i&3], w)
		i++
	}
}

func BenchmarkClip(b *testing.B) {
	w := Window{XMin: 0, YMin: 0, XMax: 100, YMax: 100}

	cases := []struct {
		name string
		seg  Segment
	}{
		{"inside", Seg(10, 10, 90, 90)},
		{"reject", Seg(110, 10, 190, 90)},
		{"one side", Seg(50, 50, 150, 80)},
		{"corner to corner", Seg(-50, 150, 150, -50)},
	}

	c, err := NewClipper(w)
	if err != nil {
		b.Fatal(err)
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := c.Clip(tc.seg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
