package photowall

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlayRefresh is how often the overlay text is redrawn, in seconds.
const overlayRefresh = 0.5

// StatsOverlay displays FPS, TPS and the current selection in the top-left
// corner. The text is refreshed every half second.
type StatsOverlay struct {
	wall    *Wall
	img     *ebiten.Image
	elapsed float64
	text    string
}

// NewStatsOverlay creates an overlay for w and attaches it.
func NewStatsOverlay(w *Wall) *StatsOverlay {
	o := &StatsOverlay{wall: w, elapsed: overlayRefresh}
	w.overlay = o
	return o
}

func (o *StatsOverlay) update(dt float64) {
	o.elapsed += dt
	if o.elapsed < overlayRefresh {
		return
	}
	o.elapsed = 0
	o.text = o.describe(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// describe formats the overlay text.
func (o *StatsOverlay) describe(fps, tps float64) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTweens: %d", fps, tps, o.wall.anim.Active())
	if id, ok := o.wall.ctrl.Active(); ok {
		t, _ := o.wall.grid.Tile(id)
		s += fmt.Sprintf("\nFocused: %d %s", id, t.Image)
	}
	return s
}

func (o *StatsOverlay) draw(screen *ebiten.Image) {
	if o.text == "" {
		return
	}
	if o.img == nil {
		// 220x64 fits four lines of debug text.
		o.img = ebiten.NewImage(220, 64)
	}
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
