package photowall

// State is the complete interaction state of the wall: the optional focused
// tile and the last pointer offset. It is a value; Reduce returns a new one.
type State struct {
	// Active is the focused tile, or NoTile.
	Active TileID
	// Pointer is the normalized pointer offset in [-1, 1]², +Y up.
	Pointer Vec2
}

// IdleState returns the state with nothing focused and the pointer centered.
func IdleState() State {
	return State{Active: NoTile}
}

// Focused returns the focused tile, if any.
func (s State) Focused() (TileID, bool) {
	return s.Active, s.Active != NoTile
}

// EventKind identifies an input event.
type EventKind uint8

const (
	EventPointerMove EventKind = iota // pointer moved to a new normalized offset
	EventTileClick                    // a tile was clicked
)

// Event is one input the reducer reacts to. Build events with PointerMove
// and TileClick.
type Event struct {
	Kind    EventKind
	Pointer Vec2
	Tile    TileID
}

// PointerMove returns a pointer-move event for the normalized offset (x, y).
func PointerMove(x, y float64) Event {
	return Event{Kind: EventPointerMove, Pointer: Vec2{x, y}, Tile: NoTile}
}

// TileClick returns a click event for the tile id.
func TileClick(id TileID) Event {
	return Event{Kind: EventTileClick, Tile: id}
}

// Reduce applies e to s and returns the next state. Clicking the focused tile
// clears the selection, clicking any other tile focuses it directly, and
// clicking an id outside g leaves the state unchanged. Pointer offsets are
// clamped to [-1, 1].
func Reduce(g *Grid, s State, e Event) State {
	switch e.Kind {
	case EventPointerMove:
		s.Pointer = Vec2{clamp(e.Pointer.X, -1, 1), clamp(e.Pointer.Y, -1, 1)}
	case EventTileClick:
		if !g.Contains(e.Tile) {
			return s
		}
		if s.Active == e.Tile {
			s.Active = NoTile
		} else {
			s.Active = e.Tile
		}
	}
	return s
}

// TargetField is a bitmask of the properties a Target sets.
type TargetField uint8

const (
	FieldPosition TargetField = 1 << iota
	FieldScale
	FieldOpacity

	FieldAll = FieldPosition | FieldScale | FieldOpacity
)

// Target is the transform a subject should animate toward. Only the
// properties named in Fields are meaningful.
type Target struct {
	Fields   TargetField
	Position Vec3
	Scale    float64
	Opacity  float64
}

// Has reports whether f is set.
func (t Target) Has(f TargetField) bool {
	return t.Fields&f != 0
}

// Frame is the full set of targets for one state.
type Frame struct {
	Container Vec3
	Tiles     []Target
}

// TileTarget computes the target of tile t in state s.
func TileTarget(t Tile, s State, cfg Config) Target {
	active, focused := s.Focused()
	switch {
	case !focused:
		return Target{Fields: FieldAll, Position: t.Base, Scale: 1, Opacity: 1}
	case active == t.ID:
		pos := t.Base
		if cfg.FocusPolicy == FocusFixedPoint {
			pos = cfg.FocalPoint
		}
		return Target{Fields: FieldAll, Position: pos, Scale: cfg.FocusScale, Opacity: 1}
	default:
		return Target{Fields: FieldAll, Position: t.Base.Scale(cfg.HideFactor), Scale: 1, Opacity: 0}
	}
}

// ContainerTarget computes the container position in state s. While a tile
// is focused the pointer offset is ignored.
func ContainerTarget(g *Grid, s State, cfg Config) Vec3 {
	active, focused := s.Focused()
	if !focused {
		return Vec3{-s.Pointer.X * cfg.PanGain, -s.Pointer.Y * cfg.PanGain, 0}
	}
	if cfg.FocusPolicy == FocusInPlace {
		if t, ok := g.Tile(active); ok {
			off := t.Base.Neg()
			off.Z = 0
			return off
		}
	}
	return Vec3{}
}

// Targets computes the container and every tile target for state s.
func Targets(g *Grid, s State, cfg Config) Frame {
	f := Frame{
		Container: ContainerTarget(g, s, cfg),
		Tiles:     make([]Target, len(g.tiles)),
	}
	for i, t := range g.tiles {
		f.Tiles[i] = TileTarget(t, s, cfg)
	}
	return f
}
