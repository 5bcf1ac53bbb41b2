package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS. The text is redrawn every
// ~0.5 seconds into its own image.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	o.since = 0.5
	return o
}

func (o *fpsOverlay) update(dt float64) {
	o.since += dt
	if o.since < 0.5 {
		return
	}
	o.since = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(screen.Bounds().Dx()-o.img.Bounds().Dx()-4), 4)
	screen.DrawImage(o.img, &op)
}
