package photowall

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectMove queues a pointer move to the given screen coordinates with no
// button held. The event is consumed on the next frame's Update.
func (w *Wall) InjectMove(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectPress queues a pointer press at the given screen coordinates.
func (w *Wall) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
	})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (w *Wall) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{screenX: x, screenY: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (w *Wall) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectClickTile queues a click at the current screen center of tile id.
// It reports false when the tile does not exist or is off-camera.
func (w *Wall) InjectClickTile(id TileID) bool {
	n := w.TileNode(id)
	if n == nil {
		return false
	}
	s, _, ok := w.camera.Project(n.worldPos)
	if !ok {
		return false
	}
	w.InjectClick(s.X, s.Y)
	return true
}

// PendingInjections returns the number of queued synthetic events.
func (w *Wall) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (device
// input is skipped for that frame).
func (w *Wall) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(evt.screenX, evt.screenY, evt.pressed)
	return true
}
