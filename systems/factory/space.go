package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/spatial"
	"github.com/automoto/platcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the singleton broadphase entity for the given bounds.
func CreateSpace(ecs *ecs.ECS, world cfg.WorldConfig) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		Index: spatial.NewIndex(world),
	})
	return space
}

// SpaceOf returns the space singleton, creating it from config.World if the
// world does not have one yet.
func SpaceOf(ecs *ecs.ECS) *components.SpaceData {
	if entry, ok := components.Space.First(ecs.World); ok {
		return components.Space.Get(entry)
	}
	return components.Space.Get(CreateSpace(ecs, cfg.World))
}

// Reindex writes the entry's current rectangle into the broadphase. Entities
// without an indexed shape are ignored.
func Reindex(index *spatial.Index, e *donburi.Entry) {
	switch {
	case e.HasComponent(components.Platform):
		index.Put(e.Entity(), components.Platform.Get(e).Bounds(), tags.ResolvPlatform)
	case e.HasComponent(components.Ladder):
		index.Put(e.Entity(), components.Ladder.Get(e).Bounds(cfg.Physics.LadderReach), tags.ResolvLadder)
	case e.HasComponent(components.Item):
		item := components.Item.Get(e)
		index.Put(e.Entity(), item.Circle().Bounds(), tags.ResolvItem)
	}
}

// Destroy removes an entity from the index and the world. References other
// entities hold to it are cleared on the next step.
func Destroy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	SpaceOf(ecs).Index.Remove(e.Entity())
	ecs.World.Remove(e.Entity())
}

type spawner interface {
	Spawn(*ecs.ECS, ...donburi.IComponentType) *donburi.Entry
}

// spawn stamps a new entry with the next creation serial.
func spawn(ecs *ecs.ECS, a spawner) *donburi.Entry {
	space := SpaceOf(ecs)
	e := a.Spawn(ecs)
	space.NextSerial++
	components.Order.SetValue(e, components.OrderData{Serial: space.NextSerial})
	return e
}
