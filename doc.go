// Package photowall renders an interactive wall of photo tiles for
// [Ebitengine].
//
// The wall is a square lattice of tiles seen through a perspective camera.
// Moving the pointer pans the wall; clicking a tile brings it forward to a
// focal point while every other tile flies outward and fades. Clicking the
// focused tile again restores the wall.
//
// # Quick start
//
//	fsys := os.DirFS("photos")
//	refs, err := photowall.ListImages(fsys, ".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	textures := photowall.LoadTextures(fsys, refs, 1024)
//	wall, err := photowall.NewWall(refs, textures, photowall.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := photowall.Run(wall, photowall.RunConfig{Title: "Wall", Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// # Layers
//
// The package is split into a pure core and an imperative shell.
//
// The core is [BuildGrid], which lays out the tiles deterministically, and
// [Reduce] plus [Targets], which turn a [State] and an [Event] into the next
// state and the transform every tile should animate toward. Nothing in the
// core touches Ebitengine, so it is tested by asserting targets rather than
// frames.
//
// The shell is [Controller], which owns the state and hands targets to an
// [AnimationSink], and [Wall], which implements [ebiten.Game]: it feeds
// pointer input to the controller, drives the [Animator] (tweens via
// [gween]) and draws the tiles.
//
// Selection changes can be forwarded to an ECS through [EventStore]; the
// photowall/ecs module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package photowall
