// Package plot renders clip windows and segments into raster images.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/lineclip"
)

// ErrInvalidSize is returned by NewCanvas for non-positive dimensions.
var ErrInvalidSize = errors.New("plot: invalid canvas size")

// Canvas is an RGBA pixel buffer with anti-aliased line drawing.
// Coordinates are in pixels with the origin at the top-left corner.
type Canvas struct {
	img *image.RGBA
	ras *vector.Rasterizer
}

// NewCanvas creates a transparent canvas with the given dimensions.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(width, height),
	}, nil
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Bounds returns the canvas area as a lineclip window in pixel space.
func (c *Canvas) Bounds() lineclip.Window {
	return lineclip.Window{XMin: 0, YMin: 0, XMax: float64(c.Width()), YMax: float64(c.Height())}
}

// Image returns the underlying image. It is not a copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// StrokeSegment draws s as a line of the given width.
// A degenerate segment is drawn as a square dot.
func (c *Canvas) StrokeSegment(s lineclip.Segment, width float64, col RGBA) {
	if width <= 0 {
		return
	}
	half := width / 2
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.fillQuad(col,
			lineclip.Pt(s.P1.X-half, s.P1.Y-half),
			lineclip.Pt(s.P1.X+half, s.P1.Y-half),
			lineclip.Pt(s.P1.X+half, s.P1.Y+half),
			lineclip.Pt(s.P1.X-half, s.P1.Y+half),
		)
		return
	}
	nx := -dy / length * half
	ny := dx / length * half
	c.fillQuad(col,
		lineclip.Pt(s.P1.X+nx, s.P1.Y+ny),
		lineclip.Pt(s.P2.X+nx, s.P2.Y+ny),
		lineclip.Pt(s.P2.X-nx, s.P2.Y-ny),
		lineclip.Pt(s.P1.X-nx, s.P1.Y-ny),
	)
}

// StrokeRect draws the outline of the axis-aligned rectangle with corners
// (x0, y0) and (x1, y1).
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width float64, col RGBA) {
	c.StrokeSegment(lineclip.Seg(x0, y0, x1, y0), width, col)
	c.StrokeSegment(lineclip.Seg(x1, y0, x1, y1), width, col)
	c.StrokeSegment(lineclip.Seg(x1, y1, x0, y1), width, col)
	c.StrokeSegment(lineclip.Seg(x0, y1, x0, y0), width, col)
}

// DrawPoint draws a filled square of the given size centered on p.
func (c *Canvas) DrawPoint(p lineclip.Point, size float64, col RGBA) {
	c.StrokeSegment(lineclip.Segment{P1: p, P2: p}, size, col)
}

// fillQuad rasterizes a convex quadrilateral with source-over blending.
func (c *Canvas) fillQuad(col RGBA, p0, p1, p2, p3 lineclip.Point) {
	c.ras.Reset(c.Width(), c.Height())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(float32(p0.X), float32(p0.Y))
	c.ras.LineTo(float32(p1.X), float32(p1.Y))
	c.ras.LineTo(float32(p2.X), float32(p2.Y))
	c.ras.LineTo(float32(p3.X), float32(p3.Y))
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{})
}

// EncodePNG writes the canvas to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
