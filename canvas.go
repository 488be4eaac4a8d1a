//go:build !js

package nodegraph

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ScreenCanvas adapts an ebiten image (usually the screen passed to Draw)
// to the Canvas interface.
type ScreenCanvas struct {
	Image *ebiten.Image
	// AntiAlias smooths line and rectangle edges.
	AntiAlias bool
}

// NewScreenCanvas wraps img.
func NewScreenCanvas(img *ebiten.Image) *ScreenCanvas {
	return &ScreenCanvas{Image: img, AntiAlias: true}
}

// Clear fills the whole image.
func (s *ScreenCanvas) Clear(c Color) {
	s.Image.Fill(c.toRGBA())
}

// FillRect fills a rectangle.
func (s *ScreenCanvas) FillRect(x, y, w, h float64, c Color) {
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), c.toRGBA(), s.AntiAlias)
}

// StrokeLine draws a line segment.
func (s *ScreenCanvas) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	vector.StrokeLine(s.Image, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.toRGBA(), s.AntiAlias)
}
