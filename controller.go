package photowall

import (
	"errors"
	"fmt"
)

// ErrUnknownTile is returned by Controller.Click for an id outside the grid.
var ErrUnknownTile = errors.New("photowall: unknown tile")

// EventStore is the interface for optional ECS integration. When set on a
// Controller, every selection change is forwarded to it.
type EventStore interface {
	EmitEvent(event SelectionEvent)
}

// SelectionEvent carries a selection change for the ECS bridge.
type SelectionEvent struct {
	// Previous and Current are the focused tiles before and after the change;
	// NoTile means nothing was focused.
	Previous TileID
	Current  TileID
	// Image is the image of Current, empty when Current is NoTile.
	Image ImageRef
}

// Controller owns the selection and pointer state of a wall and dispatches
// animation targets to a sink on every change. It is single-threaded: call
// it only from the game's update loop.
type Controller struct {
	grid  *Grid
	cfg   Config
	state State
	sink  AnimationSink
	store EventStore

	// OnSelect is called after every selection change (nil by default).
	OnSelect func(SelectionEvent)
}

// NewController creates a controller in the idle state. cfg is validated;
// the grid's own size and spacing take precedence over cfg's.
func NewController(g *Grid, cfg Config, sink AnimationSink) (*Controller, error) {
	if g == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNoImages)
	}
	if sink == nil {
		return nil, errors.New("photowall: nil animation sink")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	return &Controller{grid: g, cfg: cfg, state: IdleState(), sink: sink}, nil
}

// SetEventStore sets the optional ECS bridge.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// Grid returns the controller's grid.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Active returns the focused tile, if any.
func (c *Controller) Active() (TileID, bool) {
	return c.state.Focused()
}

// Frame returns the targets for the current state.
func (c *Controller) Frame() Frame {
	return Targets(c.grid, c.state, c.cfg)
}

// PointerMove records the normalized pointer offset (x, y) in [-1, 1]². While
// nothing is focused the container pans toward the new offset; while a tile
// is focused the container stays pinned and nothing is dispatched.
func (c *Controller) PointerMove(x, y float64) {
	c.state = Reduce(c.grid, c.state, PointerMove(x, y))
	if _, focused := c.state.Focused(); focused {
		return
	}
	c.sink.Animate(AnimationRequest{
		Subject: ContainerSubject,
		Target: Target{
			Fields:   FieldPosition,
			Position: ContainerTarget(c.grid, c.state, c.cfg),
		},
		Motion: c.cfg.PanMotion,
	})
}

// PointerMoveScreen normalizes a raw pointer position inside a viewport of
// the given size and calls PointerMove. Screen Y grows downward; the
// normalized Y grows upward.
func (c *Controller) PointerMoveScreen(px, py, width, height float64) {
	x, y := NormalizePointer(px, py, width, height)
	c.PointerMove(x, y)
}

// NormalizePointer maps a viewport position to [-1, 1]² with +Y up. A
// degenerate viewport maps to the center.
func NormalizePointer(px, py, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x := px/width*2 - 1
	y := -(py/height*2 - 1)
	return clamp(x, -1, 1), clamp(y, -1, 1)
}

// Click toggles the selection of tile id and dispatches new targets for every
// tile and the container.
func (c *Controller) Click(id TileID) error {
	if !c.grid.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownTile, id)
	}
	c.apply(Reduce(c.grid, c.state, TileClick(id)))
	return nil
}

// Reset clears the selection, if any.
func (c *Controller) Reset() {
	if _, focused := c.state.Focused(); !focused {
		return
	}
	next := c.state
	next.Active = NoTile
	c.apply(next)
}

func (c *Controller) apply(next State) {
	prev := c.state.Active
	c.state = next
	c.dispatch()
	if prev != next.Active {
		c.emit(prev, next.Active)
	}
}

// dispatch sends every tile target and the container target.
func (c *Controller) dispatch() {
	motion := c.cfg.TransformMotion
	for _, t := range c.grid.tiles {
		c.sink.Animate(AnimationRequest{
			Subject: TileSubject(t.ID),
			Target:  TileTarget(t, c.state, c.cfg),
			Motion:  motion,
		})
	}
	c.sink.Animate(AnimationRequest{
		Subject: ContainerSubject,
		Target: Target{
			Fields:   FieldPosition,
			Position: ContainerTarget(c.grid, c.state, c.cfg),
		},
		Motion: motion,
	})
}

func (c *Controller) emit(prev, cur TileID) {
	ev := SelectionEvent{Previous: prev, Current: cur}
	if t, ok := c.grid.Tile(cur); ok {
		ev.Image = t.Image
	}
	if c.OnSelect != nil {
		c.OnSelect(ev)
	}
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}
