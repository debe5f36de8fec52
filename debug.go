package photowall

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and animation metrics.
// Only populated when Wall.debug is true.
type debugStats struct {
	drawTime  time.Duration
	drawn     int
	tweens    int
	focused   TileID
	pointer   Vec2
	container Vec3
}

// debugLog prints frame stats to stderr.
func (w *Wall) debugLog(stats debugStats) {
	if !w.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[photowall] draw: %v | tiles: %d | tweens: %d\n",
		stats.drawTime, stats.drawn, stats.tweens)
	_, _ = fmt.Fprintf(os.Stderr,
		"[photowall] focused: %s | pointer: (%.2f, %.2f) | container: (%.2f, %.2f, %.2f)\n",
		focusLabel(stats.focused), stats.pointer.X, stats.pointer.Y,
		stats.container.X, stats.container.Y, stats.container.Z)
}

func focusLabel(id TileID) string {
	if id == NoTile {
		return "none"
	}
	return fmt.Sprintf("%d", id)
}
