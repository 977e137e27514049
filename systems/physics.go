package systems

import (
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// updateActors runs every per-actor phase, one actor at a time in creation
// order. An actor destroyed by a callback skips its remaining phases.
func (s *Simulation) updateActors(ecs *ecs.ECS) {
	s.actors = ordered(ecs.World, components.Actor)

	phases := []func(*donburi.Entry){
		s.applyGravity,
		s.applyLateral,
		s.updateLadder,
		s.checkProximity,
	}
	for _, e := range s.actors {
		for _, phase := range phases {
			if !e.Valid() {
				break
			}
			phase(e)
		}
	}
}

// applyGravity handles jumping off a platform and moving along the jump arc.
func (s *Simulation) applyGravity(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	s.resolveAnchors(actor)

	if actor.Climbing() {
		return
	}

	if actor.Grounded() {
		if actor.Force.Y <= 0 {
			return
		}
		actor.AnchorPlatform = donburi.Null
		actor.JumpClockMs = 0
		actor.Force.Y = 0
		actor.Falling = false
		s.listener.OnJumping(e)

		if !e.Valid() {
			return
		}
		actor = components.Actor.Get(e)
		if actor.Anchored() {
			return
		}
	}

	s.moveAlongArc(e, actor)
}

func (s *Simulation) moveAlongArc(e *donburi.Entry, actor *components.ActorData) {
	dy := s.arc().Delta(actor.JumpClockMs, s.elapsedMs) * cfg.Physics.JumpSpeed
	actor.JumpClockMs += s.elapsedMs
	if dy >= 0 {
		actor.Pos.Y += dy
		return
	}

	from := actor.Pos
	if !actor.Falling {
		actor.Falling = true
		actor.FallOriginY = from.Y
		s.listener.OnFalling(e)

		if !e.Valid() {
			return
		}
		actor = components.Actor.Get(e)
		if actor.Anchored() {
			return
		}
		from = actor.Pos
	}

	to := math.Vec2{X: from.X, Y: from.Y + dy}
	if platform, hit := s.findLanding(from, to); platform != nil {
		s.land(e, actor, platform, hit)
		return
	}
	actor.Pos = to
}

func (s *Simulation) land(e *donburi.Entry, actor *components.ActorData, platform *donburi.Entry, hit math.Vec2) {
	fallHeight := 0.0
	if actor.Falling {
		fallHeight = actor.FallOriginY - hit.Y
	}

	actor.Pos = hit
	actor.Force.Y = 0
	actor.JumpClockMs = 0
	actor.Falling = false
	actor.AnchorPlatform = platform.Entity()

	s.listener.OnLanding(e, platform, fallHeight)
}

// applyLateral moves the actor horizontally and keeps it out of solid bodies.
func (s *Simulation) applyLateral(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	if actor.Force.X == 0 {
		return
	}
	actor.FaceX = gamemath.Sign(actor.Force.X)

	to := math.Vec2{
		X: actor.Pos.X + gamemath.LinearDelta(actor.Force.X, cfg.Physics.MoveSpeed, s.elapsedMs),
		Y: actor.Pos.Y,
	}
	if solid := s.findSolid(to); solid != nil {
		actor.Force.X = 0
		if s.gate(actor) {
			s.listener.OnCollidePlatform(e, solid)
		}
		return
	}

	actor.Pos = to
	if actor.Grounded() {
		s.updateSupport(e, actor)
	}
}

// updateSupport re-checks what a grounded actor stands on after it moved.
func (s *Simulation) updateSupport(e *donburi.Entry, actor *components.ActorData) {
	current := s.resolve(actor.AnchorPlatform, components.Platform)
	if current != nil && components.Platform.Get(current).Supports(actor.Pos, cfg.Physics.SupportTolerance) {
		return
	}

	if next := s.findSupport(actor.Pos); next != nil {
		actor.AnchorPlatform = next.Entity()
		s.listener.OnSwitchPlatform(e, current, next)
		return
	}

	s.startFalling(actor)
}

// resolveAnchors drops anchors whose target no longer exists.
func (s *Simulation) resolveAnchors(actor *components.ActorData) {
	if actor.AnchorPlatform != donburi.Null && s.resolve(actor.AnchorPlatform, components.Platform) == nil {
		s.startFalling(actor)
	}
	if actor.AnchorLadder != donburi.Null && s.resolve(actor.AnchorLadder, components.Ladder) == nil {
		actor.AnchorLadder = donburi.Null
		actor.JumpClockMs = s.arc().Apex()
	}
}

// startFalling detaches the actor at the top of the arc, so it drops
// without rising first.
func (s *Simulation) startFalling(actor *components.ActorData) {
	actor.AnchorPlatform = donburi.Null
	actor.JumpClockMs = s.arc().Apex()
	actor.Falling = false
}

// gate throttles repeated collision events. The cooldown only runs down
// while a collision condition holds.
func (s *Simulation) gate(actor *components.ActorData) bool {
	actor.CollisionCooldownMs -= s.elapsedMs
	if actor.CollisionCooldownMs > 0 {
		return false
	}
	actor.CollisionCooldownMs = cfg.Physics.CollisionRepeatDelayMs
	return true
}
