package main

import (
	"github.com/automoto/platcore/components"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/automoto/platcore/systems/factory"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// demo is a small level: a floor with a wall, a ledge reached by a ladder,
// a hovering and a patrolling platform, a few items and two actors.
type demo struct {
	ecs     *ecs.ECS
	hero    *donburi.Entry
	thrower *donburi.Entry
}

func buildDemo(w *ecs.ECS) *demo {
	factory.CreatePlatform(w, 0, 0, 30, 0)
	factory.CreatePlatform(w, 24, 0, 2, 4)
	factory.CreatePlatform(w, 8, 4, 6, 0)
	factory.CreateLadder(w, 7, 0, 4)

	factory.CreateFloatingPlatform(w, 15, 6, 3, 0, components.HoverData{
		YWave:     gamemath.WaveSin,
		Amplitude: 0.05,
	})
	factory.CreatePatrolPlatform(w, 2, 8, 3, 0, math.Vec2{X: 6}, 2, ease.InOutQuad)

	factory.CreateItem(w, 10, 4.4, components.ItemFood)
	factory.CreateItem(w, 20, 0.4, components.ItemBonus)
	factory.CreateItem(w, 22, 0.4, components.ItemDanger)

	return &demo{
		ecs:     w,
		hero:    factory.CreateActor(w, "hero", 3, 1),
		thrower: factory.CreateActor(w, "thrower", 28, 1),
	}
}

// drive scripts the actors: the hero walks right and jumps now and then, the
// thrower faces left and throws periodically.
func (d *demo) drive(tick uint64) {
	if d.hero.Valid() {
		hero := components.Actor.Get(d.hero)
		hero.Force.X = 1
		if tick%90 == 45 {
			hero.Force.Y = 1
		}
	}

	if d.thrower.Valid() {
		thrower := components.Actor.Get(d.thrower)
		thrower.FaceX = -1
		if tick%120 == 60 {
			factory.LaunchProjectile(d.ecs, d.thrower, components.ItemWeapon)
		}
	}
}
