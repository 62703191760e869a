package plot

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the font size of labels in points at 72 DPI.
const LabelSize = 12

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error

	// opentype faces cache glyphs and are not safe for concurrent use.
	faceMu sync.Mutex
)

// labelFace returns the shared Go Regular face, parsed once.
func labelFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("plot: parse label font: %w", err)
			return
		}
		face, faceErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    LabelSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return face, faceErr
}

// Label draws s with its baseline starting at pixel (x, y).
func (c *Canvas) Label(x, y float64, s string, col RGBA) error {
	f, err := labelFace()
	if err != nil {
		return err
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.Color()),
		Face: f,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
	return nil
}

// MeasureLabel returns the advance width of s in pixels.
func MeasureLabel(s string) (float64, error) {
	f, err := labelFace()
	if err != nil {
		return 0, err
	}
	faceMu.Lock()
	adv := font.MeasureString(f, s)
	faceMu.Unlock()
	return float64(adv) / 64, nil
}
