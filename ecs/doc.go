// Package ecs provides ECS adapters for photowall's selection events.
//
// The primary adapter is [NewDonburiStore], which bridges selection changes
// into a [Donburi] world as typed events. Subscribe to [SelectionEventType]
// in your ECS systems to receive them. [SpawnTiles] additionally mirrors the
// lattice as entities and keeps the [Focused] tag on the selected one.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	wall.Controller().SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
