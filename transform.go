package photowall

// Nodes only translate and scale uniformly, so a world transform is a
// position, a scale and an alpha:
//
//	world = parent.pos + parent.scale * local.pos
//	scale = parent.scale * local.scale

// updateWorldTransform recomputes the world values of n and its subtree.
// parentRecomputed forces recomputation of clean children of a dirty parent.
func updateWorldTransform(n *Node, parentPos Vec3, parentScale, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldPos = parentPos.Add(Vec3{n.X, n.Y, n.Z}.Scale(parentScale))
		n.worldScale = parentScale * n.Scale
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}
	for _, child := range n.children {
		updateWorldTransform(child, n.worldPos, n.worldScale, n.worldAlpha, recompute)
	}
}

// SetPosition sets the node's local position and marks it dirty.
func (n *Node) SetPosition(x, y, z float64) {
	n.X = x
	n.Y = y
	n.Z = z
	n.transformDirty = true
}

// SetScale sets the node's uniform scale and marks it dirty.
func (n *Node) SetScale(s float64) {
	n.Scale = s
	n.transformDirty = true
}

// SetAlpha sets the node's opacity and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty flags the node for world-value recomputation. Call it after
// writing X, Y, Z, Scale or Alpha directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Position returns the local position.
func (n *Node) Position() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// WorldPosition returns the world position computed by the last update.
func (n *Node) WorldPosition() Vec3 {
	return n.worldPos
}

// WorldScale returns the world scale computed by the last update.
func (n *Node) WorldScale() float64 {
	return n.worldScale
}

// WorldAlpha returns the effective opacity computed by the last update.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}
