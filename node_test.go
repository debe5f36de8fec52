package photowall

import "testing"

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("c")
	if n.Type != NodeTypeContainer || n.Tile != NoTile {
		t.Errorf("type/tile = %v/%v", n.Type, n.Tile)
	}
	if n.Scale != 1 || n.Alpha != 1 || !n.Visible || n.Interactable {
		t.Errorf("unexpected defaults: %+v", n)
	}
	if n.ID == 0 {
		t.Error("ID should be assigned")
	}
}

func TestNewTileNode(t *testing.T) {
	tile := Tile{ID: 7, Base: Vec3{1.5, -3, 0}, Image: "/a.jpg"}
	n := NewTileNode(tile, nil)
	if n.Type != NodeTypeTile || n.Tile != 7 || !n.Interactable {
		t.Errorf("tile node = %+v", n)
	}
	if n.Position() != tile.Base {
		t.Errorf("position = %v, want %v", n.Position(), tile.Base)
	}
	if n.Name != "/a.jpg" {
		t.Errorf("Name = %q", n.Name)
	}
}

func TestAddRemoveChild(t *testing.T) {
	parent := NewContainer("p")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChild(b)
	if parent.NumChildren() != 2 || a.Parent != parent {
		t.Fatal("children not attached")
	}

	other := NewContainer("o")
	other.AddChild(a)
	if parent.NumChildren() != 1 || a.Parent != other {
		t.Error("AddChild should reparent")
	}

	b.RemoveFromParent()
	if parent.NumChildren() != 0 || b.Parent != nil {
		t.Error("RemoveFromParent failed")
	}
	b.RemoveFromParent() // no-op
}

func TestAddChildPanics(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	expectPanic("nil child", func() { p.AddChild(nil) })
	expectPanic("cycle", func() { c.AddChild(p) })
	expectPanic("wrong parent", func() { NewContainer("x").RemoveChild(c) })
}

func TestDisposeRecursive(t *testing.T) {
	root := NewContainer("root")
	grid := NewContainer("grid")
	tile := NewTileNode(Tile{ID: 0}, nil)
	tile.OnClick = func(ClickContext) {}
	root.AddChild(grid)
	grid.AddChild(tile)

	grid.Dispose()
	if !grid.IsDisposed() || !tile.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should be detached")
	}
	if tile.OnClick != nil {
		t.Error("callbacks should be cleared")
	}
	grid.Dispose() // no-op
}

func TestWorldTransformComposition(t *testing.T) {
	root := NewContainer("root")
	grid := NewContainer("grid")
	tile := NewTileNode(Tile{ID: 0, Base: Vec3{1, 2, 0}}, nil)
	root.AddChild(grid)
	grid.AddChild(tile)

	grid.SetPosition(-3, 1, 0)
	grid.SetAlpha(0.5)
	tile.SetScale(1.5)
	tile.SetAlpha(0.5)
	updateWorldTransform(root, Vec3{}, 1, 1, false)

	if got := tile.WorldPosition(); got != (Vec3{-2, 3, 0}) {
		t.Errorf("world position = %v, want (-2, 3, 0)", got)
	}
	if tile.WorldScale() != 1.5 {
		t.Errorf("world scale = %v", tile.WorldScale())
	}
	if tile.WorldAlpha() != 0.25 {
		t.Errorf("world alpha = %v, want 0.25", tile.WorldAlpha())
	}

	// Moving the parent refreshes clean children.
	grid.SetPosition(0, 0, 0)
	updateWorldTransform(root, Vec3{}, 1, 1, false)
	if got := tile.WorldPosition(); got != (Vec3{1, 2, 0}) {
		t.Errorf("world position after parent move = %v", got)
	}
}
