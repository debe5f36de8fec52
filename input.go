package photowall

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hitAlphaThreshold is the opacity below which tiles stop receiving clicks,
// so faded-out tiles cannot be picked while they fly away.
const hitAlphaThreshold = 0.05

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	Tile    TileID
	ScreenX float64
	ScreenY float64
	// World is the point on the wall plane under the pointer.
	World Vec3
}

// inputSource abstracts the device state read once per frame. The mouse and
// touch are separate: on touch-only devices the cursor never moves.
type inputSource interface {
	cursor() (x, y float64)
	mousePressed() bool
	// touch returns the position of the first active touch.
	touch() (x, y float64, ok bool)
	resetPressed() bool
}

// ebitenInput reads the mouse, the first touch and the Escape key.
type ebitenInput struct {
	touchIDs []ebiten.TouchID
}

func (in *ebitenInput) cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (in *ebitenInput) mousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (in *ebitenInput) touch() (float64, float64, bool) {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) == 0 {
		return 0, 0, false
	}
	x, y := ebiten.TouchPosition(in.touchIDs[0])
	return float64(x), float64(y), true
}

func (in *ebitenInput) resetPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

type pointerState struct {
	down    bool
	moved   bool // whether lastX/lastY hold a real sample
	lastX   float64
	lastY   float64
	hitNode *Node

	// touching is set while a touch drives the pointer.
	touching bool

	// Last raw mouse sample. The mouse only drives the pointer once it
	// moves or is pressed.
	mouseSeen bool
	mouseX    float64
	mouseY    float64
}

// processInput is called from Update to feed one frame of input to the
// controller. Injected events take priority over device input.
func (w *Wall) processInput() {
	if w.processInjectedInput() {
		return
	}
	if w.input == nil {
		return
	}
	if w.input.resetPressed() {
		w.ctrl.Reset()
	}

	ps := &w.pointer
	if tx, ty, ok := w.input.touch(); ok {
		ps.touching = true
		w.processPointer(tx, ty, true)
		return
	}
	if ps.touching {
		// The finger lifted: release where it was last seen. The cursor
		// position is meaningless on touch devices.
		ps.touching = false
		w.processPointer(ps.lastX, ps.lastY, false)
		return
	}

	mx, my := w.input.cursor()
	pressed := w.input.mousePressed()
	// The first sample only sets the baseline.
	moved := ps.mouseSeen && (mx != ps.mouseX || my != ps.mouseY)
	ps.mouseSeen = true
	ps.mouseX, ps.mouseY = mx, my
	if !moved && !pressed && !ps.down {
		return
	}
	w.processPointer(mx, my, pressed)
}

// processPointer runs the pointer state machine: every move updates the pan
// offset, and a press followed by a release over the same tile is a click.
func (w *Wall) processPointer(sx, sy float64, pressed bool) {
	ps := &w.pointer
	if !ps.moved || sx != ps.lastX || sy != ps.lastY {
		ps.moved = true
		ps.lastX, ps.lastY = sx, sy
		w.ctrl.PointerMoveScreen(sx, sy, float64(w.width), float64(w.height))
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.hitNode = w.hitTest(sx, sy)
	case !pressed && ps.down:
		target := w.hitTest(sx, sy)
		if ps.hitNode != nil && ps.hitNode == target {
			w.fireClick(target, sx, sy)
		}
		ps.down = false
		ps.hitNode = nil
	}
}

// hitTest returns the front-most interactable tile under the screen point.
// Among tiles at the same depth the one drawn last wins.
func (w *Wall) hitTest(sx, sy float64) *Node {
	var best *Node
	for _, n := range w.tiles {
		if !n.Visible || !n.Interactable || n.worldAlpha < hitAlphaThreshold {
			continue
		}
		r, ok := w.camera.QuadBounds(n.worldPos, w.cfg.TileSize*n.worldScale)
		if !ok || !r.Contains(sx, sy) {
			continue
		}
		if best == nil || n.worldPos.Z >= best.worldPos.Z {
			best = n
		}
	}
	return best
}

func (w *Wall) fireClick(n *Node, sx, sy float64) {
	if n.OnClick == nil {
		return
	}
	world, _ := w.camera.Unproject(sx, sy, n.worldPos.Z)
	n.OnClick(ClickContext{
		Node:    n,
		Tile:    n.Tile,
		ScreenX: sx,
		ScreenY: sy,
		World:   world,
	})
}
