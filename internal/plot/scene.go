package plot

import (
	"fmt"
	"math"

	"github.com/gogpu/lineclip"
)

// Item is one clipped segment to draw.
type Item struct {
	Input  lineclip.Segment
	Result lineclip.Result
}

// Scene is a clip window together with the segments clipped against it.
type Scene struct {
	World lineclip.Window
	Items []Item
}

// View returns the world-space area the scene is drawn from: the bounding
// box of the window and every input endpoint, grown by pad on each side
// as a fraction of its size. A flat view is widened to avoid a zero scale.
func (s *Scene) View(pad float64) lineclip.Window {
	v := s.World
	for _, it := range s.Items {
		for _, p := range [...]lineclip.Point{it.Input.P1, it.Input.P2} {
			if !p.IsFinite() {
				continue
			}
			v.XMin = math.Min(v.XMin, p.X)
			v.YMin = math.Min(v.YMin, p.Y)
			v.XMax = math.Max(v.XMax, p.X)
			v.YMax = math.Max(v.YMax, p.Y)
		}
	}
	dx := v.Width() * pad
	dy := v.Height() * pad
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return lineclip.Window{XMin: v.XMin - dx, YMin: v.YMin - dy, XMax: v.XMax + dx, YMax: v.YMax + dy}
}

// Render draws the scene onto c: the window outline, every input segment in
// a muted color and every accepted part on top of it.
func (s *Scene) Render(c *Canvas, margin float64) error {
	device := lineclip.Window{
		XMin: margin, YMin: margin,
		XMax: float64(c.Width()) - margin, YMax: float64(c.Height()) - margin,
	}
	m, err := lineclip.ViewportTransform(s.View(0.1), device, true)
	if err != nil {
		return fmt.Errorf("plot: map scene: %w", err)
	}

	c.Clear(Background)

	// Flipped Y: world YMax lands on the smaller pixel row.
	tl := m.TransformPoint(lineclip.Pt(s.World.XMin, s.World.YMax))
	br := m.TransformPoint(lineclip.Pt(s.World.XMax, s.World.YMin))
	c.StrokeRect(tl.X, tl.Y, br.X, br.Y, 2, WindowEdge)
	if err := c.Label(tl.X, tl.Y-6, "window "+s.World.String(), Ink); err != nil {
		return err
	}

	canvas, err := lineclip.NewClipper(c.Bounds())
	if err != nil {
		return err
	}
	for i, it := range s.Items {
		if !it.Input.P1.IsFinite() || !it.Input.P2.IsFinite() {
			continue
		}
		if err := c.strokeClipped(canvas, m.TransformSegment(it.Input), 1.5, Original); err != nil {
			return err
		}
		seg, ok := it.Result.Segment()
		if !ok {
			continue
		}
		dev := m.TransformSegment(seg)
		if err := c.strokeClipped(canvas, dev, 3, Visible); err != nil {
			return err
		}
		c.DrawPoint(dev.P1, 6, Endpoint)
		c.DrawPoint(dev.P2, 6, Endpoint)
		if err := c.Label(dev.P1.X+6, dev.P1.Y-6, fmt.Sprintf("#%d", i+1), Ink); err != nil {
			return err
		}
	}
	return nil
}

// strokeClipped draws the part of s that falls on the canvas.
func (c *Canvas) strokeClipped(clip *lineclip.Clipper, s lineclip.Segment, width float64, col RGBA) error {
	res, err := clip.Clip(s)
	if err != nil {
		return err
	}
	if vis, ok := res.Segment(); ok {
		c.StrokeSegment(vis, width, col)
	}
	return nil
}
