package photowall

import "math"

// nearPlane is the minimum depth in front of the camera that still projects.
const nearPlane = 1e-3

// Camera is a perspective camera looking down -Z with +Y up. It maps world
// positions to screen pixels inside Viewport.
type Camera struct {
	// X, Y and Z are the camera's world position.
	X, Y, Z float64
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Viewport is the screen-space rectangle the camera renders into.
	Viewport Rect
}

// NewCamera creates a camera at (0, 0, z) with the given vertical field of
// view in degrees.
func NewCamera(z, fov float64, viewport Rect) *Camera {
	return &Camera{Z: z, FOV: fov, Viewport: viewport}
}

// pixelsPerUnit returns how many screen pixels one world unit covers at the
// given depth in front of the camera.
func (c *Camera) pixelsPerUnit(depth float64) float64 {
	halfHeight := depth * math.Tan(c.FOV*math.Pi/360)
	return c.Viewport.Height / 2 / halfHeight
}

// Project maps a world position to screen coordinates. ppu is the number of
// pixels one world unit covers at that depth. ok is false for points at or
// behind the near plane.
func (c *Camera) Project(p Vec3) (screen Vec2, ppu float64, ok bool) {
	depth := c.Z - p.Z
	if depth <= nearPlane {
		return Vec2{}, 0, false
	}
	ppu = c.pixelsPerUnit(depth)
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return Vec2{
		X: cx + (p.X-c.X)*ppu,
		Y: cy - (p.Y-c.Y)*ppu,
	}, ppu, true
}

// Unproject maps a screen position to the world point on the plane Z=planeZ
// under it. ok is false when the plane is at or behind the camera.
func (c *Camera) Unproject(sx, sy, planeZ float64) (Vec3, bool) {
	depth := c.Z - planeZ
	if depth <= nearPlane {
		return Vec3{}, false
	}
	ppu := c.pixelsPerUnit(depth)
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2
	return Vec3{
		X: c.X + (sx-cx)/ppu,
		Y: c.Y - (sy-cy)/ppu,
		Z: planeZ,
	}, true
}

// QuadBounds returns the screen rectangle covered by a square of edge size
// centered on p. ok is false when p does not project.
func (c *Camera) QuadBounds(p Vec3, size float64) (Rect, bool) {
	s, ppu, ok := c.Project(p)
	if !ok {
		return Rect{}, false
	}
	edge := size * ppu
	return Rect{X: s.X - edge/2, Y: s.Y - edge/2, Width: edge, Height: edge}, true
}
