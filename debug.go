package ripple

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// StatsOverlay displays FPS/TPS, the live particle count, and the zone state
// in the top-left corner. It re-renders its backing image every ~0.5 seconds
// to keep the overlay cheap.
type StatsOverlay struct {
	engine *Engine
	img    *ebiten.Image
	accum  float64
}

// NewStatsOverlay creates an overlay bound to the engine.
func NewStatsOverlay(engine *Engine) *StatsOverlay {
	return &StatsOverlay{
		engine: engine,
		// 140x48 fits "FPS ... / TPS ... / particles ... / zone ..."
		img:   ebiten.NewImage(140, 48),
		accum: 1, // force a render on the first Draw
	}
}

// Draw blits the overlay onto screen, refreshing its contents when due.
func (o *StatsOverlay) Draw(screen *ebiten.Image) {
	o.accum += 1.0 / float64(ebiten.TPS())
	if o.accum >= 0.5 {
		o.accum = 0
		o.img.Clear()
		// Semi-transparent background for readability.
		o.img.Fill(color.RGBA{0, 0, 0, 128})

		zone := "ok"
		if _, valid := o.engine.Homography(); !valid {
			zone = "degenerate"
		}
		ebitenutil.DebugPrint(o.img, fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f\nparticles: %d\nzone: %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			o.engine.System().AliveCount(), zone))
	}

	var op ebiten.DrawImageOptions
	screen.DrawImage(o.img, &op)
}
