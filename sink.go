package photowall

// Subject names what an AnimationRequest animates: the container or a tile.
type Subject struct {
	Container bool
	Tile      TileID
}

// ContainerSubject is the Subject of the grid container.
var ContainerSubject = Subject{Container: true, Tile: NoTile}

// TileSubject returns the Subject of tile id.
func TileSubject(id TileID) Subject {
	return Subject{Tile: id}
}

// AnimationRequest asks the animation driver to move a subject toward a
// target with a fixed motion.
type AnimationRequest struct {
	Subject Subject
	Target  Target
	Motion  Motion
}

// AnimationSink receives animation requests. Requests are fire-and-forget:
// a later request for the same subject and property supersedes the endpoint
// of an earlier one, and the sink owns the interpolation.
type AnimationSink interface {
	Animate(req AnimationRequest)
}

// AnimationSinkFunc adapts a function to AnimationSink.
type AnimationSinkFunc func(req AnimationRequest)

// Animate calls f(req).
func (f AnimationSinkFunc) Animate(req AnimationRequest) {
	f(req)
}
