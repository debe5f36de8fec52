package ecs

import (
	"github.com/phanxgames/photowall"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for photowall selection
// changes.
var SelectionEventType = events.NewEventType[photowall.SelectionEvent]()

// TileData is the component stored on each tile entity.
type TileData struct {
	ID    photowall.TileID
	Image photowall.ImageRef
	Base  photowall.Vec3
}

// TileComponent holds TileData on tile entities created by SpawnTiles.
var TileComponent = donburi.NewComponentType[TileData]()

// Focused tags the entity of the focused tile.
var Focused = donburi.NewTag().SetName("Focused")

type donburiStore struct {
	world    donburi.World
	entities []donburi.Entity
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Selection
// changes are published to SelectionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) photowall.EventStore {
	return &donburiStore{world: world}
}

// SpawnTiles creates one entity per tile of g and returns an EventStore that,
// besides publishing events, moves the Focused tag to the selected tile.
func SpawnTiles(world donburi.World, g *photowall.Grid) (photowall.EventStore, []donburi.Entity) {
	s := &donburiStore{world: world, entities: make([]donburi.Entity, g.Len())}
	for i, t := range g.Tiles() {
		e := world.Create(TileComponent)
		TileComponent.SetValue(world.Entry(e), TileData{ID: t.ID, Image: t.Image, Base: t.Base})
		s.entities[i] = e
	}
	return s, s.entities
}

func (s *donburiStore) EmitEvent(event photowall.SelectionEvent) {
	if s.entities != nil {
		s.retag(event.Previous, event.Current)
	}
	SelectionEventType.Publish(s.world, event)
}

func (s *donburiStore) retag(prev, cur photowall.TileID) {
	if entry := s.entry(prev); entry != nil && entry.HasComponent(Focused) {
		entry.RemoveComponent(Focused)
	}
	if entry := s.entry(cur); entry != nil && !entry.HasComponent(Focused) {
		entry.AddComponent(Focused)
	}
}

func (s *donburiStore) entry(id photowall.TileID) *donburi.Entry {
	if id < 0 || int(id) >= len(s.entities) {
		return nil
	}
	e := s.entities[id]
	if !s.world.Valid(e) {
		return nil
	}
	return s.world.Entry(e)
}
