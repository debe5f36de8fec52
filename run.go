package photowall

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowStats attaches a StatsOverlay.
	ShowStats bool
	// Debug logs per-frame stats to stderr.
	Debug bool
}

// Run opens a window and runs the wall until the window is closed.
func Run(w *Wall, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("photowall: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w.setViewport(cfg.Width, cfg.Height)
	if cfg.ShowStats {
		NewStatsOverlay(w)
	}
	w.SetDebugMode(cfg.Debug)
	return ebiten.RunGame(w)
}
