package components

import (
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ActorData is a circular character driven by a force vector.
type ActorData struct {
	Name   string
	Pos    math.Vec2 // bottom-center anchor
	Radius float64
	FaceX  float64 // -1 or 1, kept through idle ticks
	Force  math.Vec2

	JumpClockMs float64
	FallOriginY float64 // valid while Falling
	Falling     bool

	// Weak references, re-resolved against the world every tick.
	AnchorPlatform donburi.Entity
	AnchorLadder   donburi.Entity

	// Counts down by elapsed ms each gated check; the event fires when it
	// reaches zero and the counter restarts at the full repeat delay.
	CollisionCooldownMs float64
	CanCollide          bool
}

var Actor = donburi.NewComponentType[ActorData]()

// Circle returns the collision circle resting on the anchor point.
func (a *ActorData) Circle() gamemath.Circle {
	return gamemath.Circle{
		Center: math.Vec2{X: a.Pos.X, Y: a.Pos.Y + a.Radius},
		Radius: a.Radius,
	}
}

// Grounded reports whether the actor stands on a platform.
func (a *ActorData) Grounded() bool {
	return a.AnchorPlatform != donburi.Null
}

// Climbing reports whether the actor holds a ladder.
func (a *ActorData) Climbing() bool {
	return a.AnchorLadder != donburi.Null
}

// Anchored reports whether gravity is suspended for the actor.
func (a *ActorData) Anchored() bool {
	return a.Grounded() || a.Climbing()
}
