package photowall

import (
	"math/rand/v2"
	"testing"
)

func testGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := BuildGrid([]ImageRef{"A", "B"}, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestReduceTransitions(t *testing.T) {
	g := testGrid(t)
	idle := IdleState()

	s := Reduce(g, idle, TileClick(3))
	if id, ok := s.Focused(); !ok || id != 3 {
		t.Fatalf("click in idle: focused = %d, %v", id, ok)
	}

	s = Reduce(g, s, TileClick(1))
	if id, ok := s.Focused(); !ok || id != 1 {
		t.Fatalf("click on another tile: focused = %d, %v, want 1", id, ok)
	}

	s = Reduce(g, s, TileClick(1))
	if _, ok := s.Focused(); ok {
		t.Fatal("click on the focused tile should return to idle")
	}
}

func TestReduceUnknownTileIsNoop(t *testing.T) {
	g := testGrid(t)
	s := Reduce(g, IdleState(), TileClick(2))
	for _, id := range []TileID{NoTile, 4, 100} {
		if got := Reduce(g, s, TileClick(id)); got != s {
			t.Errorf("TileClick(%d) changed state to %+v", id, got)
		}
	}
}

func TestReducePointerMove(t *testing.T) {
	g := testGrid(t)
	s := Reduce(g, IdleState(), TileClick(0))
	s = Reduce(g, s, PointerMove(0.25, -0.5))
	if s.Pointer != (Vec2{0.25, -0.5}) {
		t.Errorf("Pointer = %v", s.Pointer)
	}
	if s.Active != 0 {
		t.Error("pointer move must not change the selection")
	}

	s = Reduce(g, s, PointerMove(4, -9))
	if s.Pointer != (Vec2{1, -1}) {
		t.Errorf("Pointer = %v, want clamped (1, -1)", s.Pointer)
	}
}

func TestReduceExclusivity(t *testing.T) {
	g, err := BuildGrid([]ImageRef{"a", "b", "c"}, 6, 1)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	s := IdleState()
	for i := 0; i < 2000; i++ {
		prev := s
		id := TileID(rng.IntN(g.Len()+2) - 1)
		s = Reduce(g, s, TileClick(id))

		if s.Active != NoTile && !g.Contains(s.Active) {
			t.Fatalf("step %d: active %d outside the grid", i, s.Active)
		}
		switch {
		case !g.Contains(id):
			if s != prev {
				t.Fatalf("step %d: invalid click changed state", i)
			}
		case prev.Active == id:
			if s.Active != NoTile {
				t.Fatalf("step %d: toggle should clear", i)
			}
		default:
			if s.Active != id {
				t.Fatalf("step %d: active = %d, want %d", i, s.Active, id)
			}
		}
	}
}

func TestTargetsIdle(t *testing.T) {
	g := testGrid(t)
	cfg := DefaultConfig()
	s := Reduce(g, IdleState(), PointerMove(0.5, -0.25))

	f := Targets(g, s, cfg)
	if f.Container != (Vec3{-1.5, 0.75, 0}) {
		t.Errorf("Container = %v, want (-1.5, 0.75, 0)", f.Container)
	}
	for i, tile := range g.Tiles() {
		want := Target{Fields: FieldAll, Position: tile.Base, Scale: 1, Opacity: 1}
		if f.Tiles[i] != want {
			t.Errorf("tile %d: %+v, want %+v", i, f.Tiles[i], want)
		}
	}
}

func TestTargetsFocusFixedPoint(t *testing.T) {
	g := testGrid(t)
	cfg := DefaultConfig()
	s := Reduce(g, IdleState(), TileClick(0))

	f := Targets(g, s, cfg)
	if f.Container != (Vec3{}) {
		t.Errorf("Container = %v, want origin", f.Container)
	}
	focused := f.Tiles[0]
	if focused.Position != cfg.FocalPoint || focused.Scale != cfg.FocusScale || focused.Opacity != 1 {
		t.Errorf("focused target = %+v", focused)
	}
	for i := 1; i < g.Len(); i++ {
		tile := g.Tiles()[i]
		want := Target{Fields: FieldAll, Position: tile.Base.Scale(cfg.HideFactor), Scale: 1, Opacity: 0}
		if f.Tiles[i] != want {
			t.Errorf("tile %d: %+v, want %+v", i, f.Tiles[i], want)
		}
	}
}

func TestTargetsFocusInPlace(t *testing.T) {
	g := testGrid(t)
	cfg := DefaultConfig()
	cfg.FocusPolicy = FocusInPlace
	s := Reduce(g, IdleState(), TileClick(1)) // coordinate (-1, 0)

	f := Targets(g, s, cfg)
	if f.Container != (Vec3{1, 0, 0}) {
		t.Errorf("Container = %v, want (1, 0, 0)", f.Container)
	}
	if f.Tiles[1].Position != g.Tiles()[1].Base || f.Tiles[1].Scale != cfg.FocusScale {
		t.Errorf("focused target = %+v", f.Tiles[1])
	}
	if f.Tiles[0].Opacity != 0 {
		t.Error("unfocused tile should fade out")
	}
}

func TestContainerPinnedWhileFocused(t *testing.T) {
	g := testGrid(t)
	for _, policy := range []FocusPolicy{FocusFixedPoint, FocusInPlace} {
		cfg := DefaultConfig()
		cfg.FocusPolicy = policy
		s := Reduce(g, IdleState(), TileClick(2))
		pinned := ContainerTarget(g, s, cfg)
		for _, p := range []Vec2{{1, 1}, {-1, 0.3}, {0.2, -0.9}} {
			s = Reduce(g, s, PointerMove(p.X, p.Y))
			if got := ContainerTarget(g, s, cfg); got != pinned {
				t.Errorf("%s: container moved to %v after pointer %v, want %v", policy, got, p, pinned)
			}
		}
	}
}

func TestToggleTwiceRestoresIdleTargets(t *testing.T) {
	g, err := BuildGrid([]ImageRef{"a", "b", "c"}, 4, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	idle := Reduce(g, IdleState(), PointerMove(0.1, 0.2))
	base := Targets(g, idle, cfg)

	for _, tile := range g.Tiles() {
		s := Reduce(g, idle, TileClick(tile.ID))
		s = Reduce(g, s, TileClick(tile.ID))
		if s != idle {
			t.Fatalf("tile %d: state %+v, want %+v", tile.ID, s, idle)
		}
		f := Targets(g, s, cfg)
		if f.Container != base.Container {
			t.Fatalf("tile %d: container %v, want %v", tile.ID, f.Container, base.Container)
		}
		for i := range f.Tiles {
			if f.Tiles[i] != base.Tiles[i] {
				t.Fatalf("tile %d: target %d = %+v, want %+v", tile.ID, i, f.Tiles[i], base.Tiles[i])
			}
		}
	}
}

func TestReduceDoesNotAllocate(t *testing.T) {
	g := testGrid(t)
	s := IdleState()
	allocs := testing.AllocsPerRun(100, func() {
		s = Reduce(g, s, PointerMove(0.25, -0.5))
		s = Reduce(g, s, TileClick(1))
	})
	if allocs != 0 {
		t.Errorf("Reduce allocated %v times per run, want 0", allocs)
	}
}
