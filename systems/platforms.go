package systems

import (
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/systems/factory"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// updatePlatforms moves hovering and patrolling platforms and carries the
// actors standing on them by the same delta.
func (s *Simulation) updatePlatforms(ecs *ecs.ECS) {
	index := s.space().Index

	for _, e := range ordered(ecs.World, components.Platform) {
		if !e.Valid() {
			continue
		}

		var delta math.Vec2
		if e.HasComponent(components.Hover) {
			delta = addVec(delta, s.advanceHover(components.Hover.Get(e)))
		}
		if e.HasComponent(components.Patrol) {
			delta = addVec(delta, s.advancePatrol(components.Patrol.Get(e)))
		}
		if delta.X == 0 && delta.Y == 0 {
			continue
		}

		platform := components.Platform.Get(e)
		platform.Pos = addVec(platform.Pos, delta)
		factory.Reindex(index, e)

		s.carry(e, delta)
	}
}

func (s *Simulation) advanceHover(hover *components.HoverData) math.Vec2 {
	if !hover.Active() {
		hover.LastDelta = math.Vec2{}
		return hover.LastDelta
	}

	angle := float64(hover.Phase) * cfg.Hover.PhaseStep
	hover.LastDelta = math.Vec2{
		X: hover.Amplitude * hover.XWave.Eval(angle),
		Y: hover.Amplitude * hover.YWave.Eval(angle),
	}
	hover.Phase++

	return hover.LastDelta
}

func (s *Simulation) advancePatrol(patrol *components.PatrolData) math.Vec2 {
	if patrol.DurationSec <= 0 {
		patrol.LastDelta = math.Vec2{}
		return patrol.LastDelta
	}
	if patrol.Tween == nil {
		patrol.Tween = newLeg(patrol)
	}

	value, finished := patrol.Tween.Update(float32(s.elapsedMs / 1000))
	step := float64(value - patrol.Progress)
	patrol.Progress = value
	patrol.LastDelta = math.Vec2{X: patrol.Offset.X * step, Y: patrol.Offset.Y * step}

	if finished {
		patrol.Returning = !patrol.Returning
		patrol.Tween = newLeg(patrol)
	}

	return patrol.LastDelta
}

func newLeg(patrol *components.PatrolData) *gween.Tween {
	if patrol.Returning {
		return gween.New(1, 0, patrol.DurationSec, patrol.Easing)
	}
	return gween.New(0, 1, patrol.DurationSec, patrol.Easing)
}

// carry moves every actor anchored to the platform. A carried actor only
// checks lateral collisions: when blocked it keeps its x, follows the platform
// vertically and drops off once the platform no longer supports it.
func (s *Simulation) carry(platformEntry *donburi.Entry, delta math.Vec2) {
	for _, e := range ordered(s.ecs.World, components.Actor) {
		if !platformEntry.Valid() {
			return
		}
		if !e.Valid() {
			continue
		}
		actor := components.Actor.Get(e)
		if actor.AnchorPlatform != platformEntry.Entity() {
			continue
		}

		platform := components.Platform.Get(platformEntry)
		from := actor.Pos
		actor.Pos = math.Vec2{X: from.X + delta.X, Y: platform.Top()}

		solid := s.findSolid(actor.Pos)
		if solid == nil {
			continue
		}

		actor.Pos.X = from.X
		if !platform.Supports(actor.Pos, cfg.Physics.SupportTolerance) {
			s.startFalling(actor)
		}
		if s.gate(actor) {
			s.listener.OnCollidePlatform(e, solid)
		}
	}
}

func addVec(a, b math.Vec2) math.Vec2 {
	return math.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}
