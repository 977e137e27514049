package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlatform(ecs *ecs.ECS, x, y float64, width, height int) *donburi.Entry {
	platform := spawn(ecs, archetypes.Platform)
	setPlatform(ecs, platform, x, y, width, height)
	return platform
}

// CreateFloatingPlatform spawns a platform that oscillates along the given
// waves. LastDelta is computed by the simulation.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y float64, width, height int, hover components.HoverData) *donburi.Entry {
	platform := spawn(ecs, archetypes.FloatingPlatform)
	setPlatform(ecs, platform, x, y, width, height)

	hover.LastDelta = math.Vec2{}
	components.Hover.SetValue(platform, hover)

	return platform
}

// CreatePatrolPlatform spawns a platform that travels to (x, y)+offset and back,
// each leg taking durationSec. A nil easing means ease.Linear.
func CreatePatrolPlatform(ecs *ecs.ECS, x, y float64, width, height int, offset math.Vec2, durationSec float32, easing ease.TweenFunc) *donburi.Entry {
	platform := spawn(ecs, archetypes.PatrolPlatform)
	setPlatform(ecs, platform, x, y, width, height)

	if easing == nil {
		easing = ease.Linear
	}

	// The patrol moves using one tween per leg, swapped when a leg finishes.
	components.Patrol.SetValue(platform, components.PatrolData{
		Origin:      math.Vec2{X: x, Y: y},
		Offset:      offset,
		DurationSec: durationSec,
		Easing:      easing,
		Tween:       gween.New(0, 1, durationSec, easing),
	})

	return platform
}

func setPlatform(ecs *ecs.ECS, platform *donburi.Entry, x, y float64, width, height int) {
	if height < 0 {
		height = 0
	}
	components.Platform.SetValue(platform, components.PlatformData{
		Pos:    math.Vec2{X: x, Y: y},
		Width:  width,
		Height: height,
	})
	Reindex(SpaceOf(ecs).Index, platform)
}
