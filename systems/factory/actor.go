package factory

import (
	"github.com/automoto/platcore/archetypes"
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateActor spawns an actor whose bottom-center rests at (x, y). It starts
// at the apex of the arc, so an unsupported actor falls on the first step and
// one placed on a platform top settles onto it.
func CreateActor(ecs *ecs.ECS, name string, x, y float64) *donburi.Entry {
	actor := spawn(ecs, archetypes.Actor)

	components.Actor.SetValue(actor, components.ActorData{
		Name:        name,
		Pos:         math.Vec2{X: x, Y: y},
		Radius:      cfg.Actor.Radius,
		FaceX:       cfg.DirectionRight,
		JumpClockMs: cfg.Physics.JumpDurationMs / 2,
		CanCollide:  true,

		AnchorPlatform: donburi.Null,
		AnchorLadder:   donburi.Null,
	})

	return actor
}
