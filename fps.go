//go:build !js

package nodegraph

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints FPS and TPS in the top-left corner. The text is
// refreshed about twice a second.
type fpsOverlay struct {
	img    *ebiten.Image
	frames int
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32)}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.frames%30 == 0 {
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	o.frames++
	screen.DrawImage(o.img, nil)
}
