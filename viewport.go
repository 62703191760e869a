package lineclip

import "fmt"

// ViewportTransform returns the matrix mapping world onto device:
//
//	xv = xvmin + (xw - xwmin) * (xvmax - xvmin) / (xwmax - xwmin)
//	yv = yvmin + (yw - ywmin) * (yvmax - yvmin) / (ywmax - ywmin)
//
// With flipY the world YMax maps to device YMin instead, which is what
// raster images (rows growing downwards) need.
//
// Both windows must be valid. The world window must have non-zero width and
// height, otherwise an error wrapping ErrInvalidViewport is returned. A
// degenerate device window is allowed and collapses the output.
func ViewportTransform(world, device Window, flipY bool) (Matrix, error) {
	if err := world.Validate(); err != nil {
		return Matrix{}, fmt.Errorf("world: %w", err)
	}
	if err := device.Validate(); err != nil {
		return Matrix{}, fmt.Errorf("device: %w", err)
	}
	if world.Width() == 0 || world.Height() == 0 {
		return Matrix{}, fmt.Errorf("%w: world window %v has zero area", ErrInvalidViewport, world)
	}

	sx := device.Width() / world.Width()
	sy := device.Height() / world.Height()
	if !flipY {
		return Translate(device.XMin, device.YMin).
			Multiply(Scale(sx, sy)).
			Multiply(Translate(-world.XMin, -world.YMin)), nil
	}
	return Translate(device.XMin, device.YMax).
		Multiply(Scale(sx, -sy)).
		Multiply(Translate(-world.XMin, -world.YMin)), nil
}
