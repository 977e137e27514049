package archetypes

import (
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
		components.Order,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Order,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		tags.FloatingPlatform,
		components.Platform,
		components.Hover,
		components.Order,
	)
	PatrolPlatform = newArchetype(
		tags.Platform,
		tags.PatrolPlatform,
		components.Platform,
		components.Patrol,
		components.Order,
	)
	Ladder = newArchetype(
		tags.Ladder,
		components.Ladder,
		components.Order,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Order,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Order,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
