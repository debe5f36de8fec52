package photowall

import "testing"

func TestInjectQueueOrder(t *testing.T) {
	w := newTestWall(t)
	w.InjectMove(10, 20)
	w.InjectClick(400, 300)
	if w.PendingInjections() != 3 {
		t.Fatalf("PendingInjections = %d, want 3", w.PendingInjections())
	}
	want := []syntheticPointerEvent{
		{screenX: 10, screenY: 20},
		{screenX: 400, screenY: 300, pressed: true},
		{screenX: 400, screenY: 300},
	}
	for i, evt := range want {
		if w.injectQueue[i] != evt {
			t.Errorf("event %d = %+v, want %+v", i, w.injectQueue[i], evt)
		}
	}
}

func TestInjectOneEventPerFrame(t *testing.T) {
	w := newTestWall(t)
	w.InjectClick(400, 300)
	settle(t, w, 1)
	if w.PendingInjections() != 1 {
		t.Errorf("after one frame PendingInjections = %d, want 1", w.PendingInjections())
	}
	if _, ok := w.Controller().Active(); ok {
		t.Error("press alone should not click")
	}
	settle(t, w, 1)
	if id, ok := w.Controller().Active(); !ok || id != 3 {
		t.Errorf("focused = %d, %v, want 3", id, ok)
	}
}

func TestInjectClickTile(t *testing.T) {
	w := newTestWall(t)
	if w.InjectClickTile(NoTile) || w.InjectClickTile(4) {
		t.Error("unknown tiles should not be clickable")
	}
	if !w.InjectClickTile(0) {
		t.Fatal("tile 0 should be clickable")
	}
	s, _, _ := w.Camera().Project(w.TileNode(0).WorldPosition())
	if got := w.injectQueue[0]; got.screenX != s.X || got.screenY != s.Y || !got.pressed {
		t.Errorf("press = %+v, want at %v", got, s)
	}
	settle(t, w, 2)
	if id, ok := w.Controller().Active(); !ok || id != 0 {
		t.Errorf("focused = %d, %v, want 0", id, ok)
	}
}

func TestInjectClickTileBehindCamera(t *testing.T) {
	w := newTestWall(t)
	w.TileNode(1).SetPosition(0, 0, 10)
	updateWorldTransform(w.root, Vec3{}, 1, 1, false)
	if w.InjectClickTile(1) {
		t.Error("a tile behind the camera should not be clickable")
	}
}
