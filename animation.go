package photowall

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields on a Node simultaneously.
// Create one via TweenPosition, TweenScale or TweenAlpha and call Update(dt)
// each frame. The group writes values and marks the node dirty. If the target
// node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition creates a TweenGroup that animates node.X, node.Y and node.Z
// to the target over the specified duration using the easing function.
func TweenPosition(node *Node, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3, target: node}
	g.tweens[0] = gween.New(float32(node.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(node.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(node.Z), float32(to.Z), duration, fn)
	g.fields[0] = &node.X
	g.fields[1] = &node.Y
	g.fields[2] = &node.Z
	return g
}

// TweenScale creates a TweenGroup that animates node.Scale to the target value.
func TweenScale(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Scale), float32(to), duration, fn)
	g.fields[0] = &node.Scale
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Alpha), float32(to), duration, fn)
	g.fields[0] = &node.Alpha
	return g
}

type animKey struct {
	subject Subject
	field   TargetField
}

// Animator is the AnimationSink that drives Node fields with tweens. A
// request for a subject and property replaces the tween already running for
// them, starting from the node's current value, so rapid re-clicks retarget
// smoothly instead of queueing.
//
// There is no global clock: the owner calls Update once per frame.
type Animator struct {
	container *Node
	tiles     []*Node
	groups    map[animKey]*TweenGroup
}

// NewAnimator creates an animator for the container node and the tile nodes,
// indexed by TileID.
func NewAnimator(container *Node, tiles []*Node) *Animator {
	return &Animator{
		container: container,
		tiles:     tiles,
		groups:    make(map[animKey]*TweenGroup),
	}
}

// Animate implements AnimationSink. Requests for unknown subjects and
// unknown easing names fall back to a no-op and linear easing respectively.
func (a *Animator) Animate(req AnimationRequest) {
	node := a.node(req.Subject)
	if node == nil || node.IsDisposed() {
		return
	}
	fn, ok := req.Motion.Ease.Func()
	if !ok {
		fn = ease.Linear
	}
	t := req.Target
	d := req.Motion.Duration

	if t.Has(FieldPosition) {
		a.start(req.Subject, FieldPosition, node, d, func() *TweenGroup {
			return TweenPosition(node, t.Position, d, fn)
		}, func() {
			node.X, node.Y, node.Z = t.Position.X, t.Position.Y, t.Position.Z
		})
	}
	if t.Has(FieldScale) {
		a.start(req.Subject, FieldScale, node, d, func() *TweenGroup {
			return TweenScale(node, t.Scale, d, fn)
		}, func() {
			node.Scale = t.Scale
		})
	}
	if t.Has(FieldOpacity) {
		a.start(req.Subject, FieldOpacity, node, d, func() *TweenGroup {
			return TweenAlpha(node, t.Opacity, d, fn)
		}, func() {
			node.Alpha = t.Opacity
		})
	}
}

// start replaces the group for key. A zero duration snaps immediately.
func (a *Animator) start(s Subject, f TargetField, node *Node, d float32, tween func() *TweenGroup, snap func()) {
	key := animKey{s, f}
	if d <= 0 {
		delete(a.groups, key)
		snap()
		node.MarkDirty()
		return
	}
	a.groups[key] = tween()
}

// Update advances every running tween by dt seconds and drops finished ones.
func (a *Animator) Update(dt float32) {
	for key, g := range a.groups {
		g.Update(dt)
		if g.Done {
			delete(a.groups, key)
		}
	}
}

// Active returns the number of running tween groups.
func (a *Animator) Active() int {
	return len(a.groups)
}

func (a *Animator) node(s Subject) *Node {
	if s.Container {
		return a.container
	}
	if s.Tile < 0 || int(s.Tile) >= len(a.tiles) {
		return nil
	}
	return a.tiles[s.Tile]
}
