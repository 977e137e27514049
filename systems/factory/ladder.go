package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateLadder spawns a ladder whose foot is centered on (x, y).
func CreateLadder(ecs *ecs.ECS, x, y float64, height int) *donburi.Entry {
	ladder := spawn(ecs, archetypes.Ladder)
	components.Ladder.SetValue(ladder, components.LadderData{
		Pos:    math.Vec2{X: x, Y: y},
		Height: height,
	})
	Reindex(SpaceOf(ecs).Index, ladder)
	return ladder
}
