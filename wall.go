package photowall

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Wall is the top-level object that owns the tile nodes, the controller, the
// animator, the camera and the input state. It implements ebiten.Game.
type Wall struct {
	cfg     Config
	builder GridBuilder
	grid    *Grid
	ctrl    *Controller
	anim   *Animator
	camera *Camera

	root      *Node
	container *Node
	tiles     []*Node

	width, height int

	// Input state
	input       inputSource
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner

	// Render state
	drawOrder []*Node
	overlay   *StatsOverlay
	debug     bool

	// ScreenshotDir is where Screenshot writes PNGs. Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	updateFunc func() error
}

// NewWall builds the grid for images, creates one tile node per tile and
// wires the controller to an animator. textures may be missing entries;
// those tiles draw as solid squares.
func NewWall(images []ImageRef, textures map[ImageRef]*ebiten.Image, cfg Config) (*Wall, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new wall: %w", err)
	}

	w := &Wall{
		cfg:       cfg,
		builder:   GridBuilder{Size: cfg.GridSize, Spacing: cfg.Spacing},
		root:      NewContainer("root"),
		container: NewContainer("grid"),
		input:     &ebitenInput{},
		camera:    NewCamera(cfg.CameraZ, cfg.FOV, Rect{}),

		ScreenshotDir: "screenshots",
	}
	w.root.AddChild(w.container)

	grid, err := w.builder.Build(images)
	if err != nil {
		return nil, fmt.Errorf("new wall: %w", err)
	}
	if err := w.setGrid(grid, textures); err != nil {
		return nil, fmt.Errorf("new wall: %w", err)
	}
	return w, nil
}

// setGrid replaces the tile nodes, the animator and the controller with ones
// for grid. Selection callbacks, the event store and the pointer offset carry
// over from the previous controller.
func (w *Wall) setGrid(grid *Grid, textures map[ImageRef]*ebiten.Image) error {
	for _, n := range w.tiles {
		n.Dispose()
	}
	w.pointer.down = false
	w.pointer.hitNode = nil

	tiles := make([]*Node, grid.Len())
	for i, t := range grid.Tiles() {
		n := NewTileNode(t, textures[t.Image])
		n.OnClick = w.handleTileClick
		w.container.AddChild(n)
		tiles[i] = n
	}
	anim := NewAnimator(w.container, tiles)
	ctrl, err := NewController(grid, w.cfg, anim)
	if err != nil {
		return err
	}
	if old := w.ctrl; old != nil {
		old.Reset()
		ctrl.OnSelect = old.OnSelect
		ctrl.store = old.store
		p := old.State().Pointer
		ctrl.PointerMove(p.X, p.Y)
	}

	w.grid, w.tiles, w.anim, w.ctrl = grid, tiles, anim, ctrl
	updateWorldTransform(w.root, Vec3{}, 1, 1, false)
	return nil
}

// SetImages shows a new image list. The tiles are rebuilt only when the list
// differs from the current one; otherwise just the textures are swapped. A
// rebuild clears the selection.
func (w *Wall) SetImages(images []ImageRef, textures map[ImageRef]*ebiten.Image) error {
	if w.IsDisposed() {
		return errors.New("photowall: wall is disposed")
	}
	grid, err := w.builder.Build(images)
	if err != nil {
		return fmt.Errorf("set images: %w", err)
	}
	if grid == w.grid {
		for i, t := range grid.Tiles() {
			w.tiles[i].Image = textures[t.Image]
		}
		return nil
	}
	if err := w.setGrid(grid, textures); err != nil {
		return fmt.Errorf("set images: %w", err)
	}
	return nil
}

// Dispose releases every node and stops all animations. Update and Draw do
// nothing afterwards.
func (w *Wall) Dispose() {
	if w.IsDisposed() {
		return
	}
	w.root.Dispose()
	// Every group now targets a disposed node and drops out.
	w.anim.Update(0)
	w.injectQueue = nil
	w.testRunner = nil
	w.pointer = pointerState{}
}

// IsDisposed reports whether Dispose has been called.
func (w *Wall) IsDisposed() bool {
	return w.root.IsDisposed()
}

func (w *Wall) handleTileClick(ctx ClickContext) {
	// Ids come from our own nodes, so Click cannot fail here.
	_ = w.ctrl.Click(ctx.Node.Tile)
}

// Controller returns the wall's controller.
func (w *Wall) Controller() *Controller {
	return w.ctrl
}

// Animator returns the wall's animation driver.
func (w *Wall) Animator() *Animator {
	return w.anim
}

// Grid returns the wall's tile lattice.
func (w *Wall) Grid() *Grid {
	return w.grid
}

// Camera returns the wall's camera.
func (w *Wall) Camera() *Camera {
	return w.camera
}

// Container returns the node every tile is parented to.
func (w *Wall) Container() *Node {
	return w.container
}

// TileNode returns the node of tile id, or nil.
func (w *Wall) TileNode(id TileID) *Node {
	if !w.grid.Contains(id) {
		return nil
	}
	return w.tiles[id]
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (w *Wall) SetUpdateFunc(fn func() error) {
	w.updateFunc = fn
}

// SetDebugMode enables or disables per-frame timing stats on stderr.
func (w *Wall) SetDebugMode(enabled bool) {
	w.debug = enabled
}

// Update processes input and advances animations by one tick.
func (w *Wall) Update() error {
	return w.update(float32(1.0 / float64(ebiten.TPS())))
}

func (w *Wall) update(dt float32) error {
	if w.IsDisposed() {
		return nil
	}
	// Refresh world values first so hit testing sees this frame's positions.
	updateWorldTransform(w.root, Vec3{}, 1, 1, false)

	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInput()
	w.anim.Update(dt)
	if w.overlay != nil {
		w.overlay.update(float64(dt))
	}
	updateWorldTransform(w.root, Vec3{}, 1, 1, false)

	if w.updateFunc != nil {
		return w.updateFunc()
	}
	return nil
}

// Layout implements ebiten.Game. The wall renders at the outside size.
func (w *Wall) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.setViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (w *Wall) setViewport(width, height int) {
	w.width, w.height = width, height
	w.camera.Viewport = Rect{Width: float64(width), Height: float64(height)}
}

// Draw clears the screen and draws the visible tiles back to front.
func (w *Wall) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if w.debug {
		t0 = time.Now()
	}

	screen.Fill(w.cfg.Background.toRGBA())
	if w.IsDisposed() {
		return
	}
	order := w.sortedTiles()
	for _, n := range order {
		w.drawTile(screen, n)
	}

	if w.overlay != nil {
		w.overlay.draw(screen)
	}
	if w.debug {
		w.debugLog(debugStats{
			drawTime:  time.Since(t0),
			drawn:     len(order),
			tweens:    w.anim.Active(),
			focused:   w.ctrl.State().Active,
			pointer:   w.ctrl.State().Pointer,
			container: w.container.Position(),
		})
	}
	w.flushScreenshots(screen)
}

// sortedTiles returns the visible tiles ordered back to front. Tiles at the
// same depth keep generation order.
func (w *Wall) sortedTiles() []*Node {
	w.drawOrder = w.drawOrder[:0]
	for _, n := range w.tiles {
		if n.Visible && n.worldAlpha > 0 {
			w.drawOrder = append(w.drawOrder, n)
		}
	}
	slices.SortStableFunc(w.drawOrder, func(a, b *Node) int {
		switch {
		case a.worldPos.Z < b.worldPos.Z:
			return -1
		case a.worldPos.Z > b.worldPos.Z:
			return 1
		}
		return 0
	})
	return w.drawOrder
}

func (w *Wall) drawTile(screen *ebiten.Image, n *Node) {
	r, ok := w.camera.QuadBounds(n.worldPos, w.cfg.TileSize*n.worldScale)
	if !ok || r.Width <= 0 {
		return
	}
	img := n.Image
	if img == nil {
		img = whitePixel()
	}
	b := img.Bounds()

	var op ebiten.DrawImageOptions
	op.Filter = ebiten.FilterLinear
	op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.Scale(float32(n.Color.R), float32(n.Color.G), float32(n.Color.B), 1)
	op.ColorScale.ScaleAlpha(float32(clamp01(n.worldAlpha * n.Color.A)))
	screen.DrawImage(img, &op)
}

var whitePixelImage *ebiten.Image

// whitePixel returns a 1x1 white image used for untextured tiles.
func whitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
