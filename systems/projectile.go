package systems

import (
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// updateProjectiles moves projectiles along the arc and reports what they hit.
// Projectiles are never destroyed here; the listener decides their fate.
func (s *Simulation) updateProjectiles(ecs *ecs.ECS) {
	arc := s.arc()
	actors := ordered(ecs.World, components.Actor)

	for _, e := range ordered(ecs.World, components.Projectile) {
		if !e.Valid() {
			continue
		}
		projectile := components.Projectile.Get(e)

		from := projectile.Pos
		to := math.Vec2{
			X: from.X + gamemath.LinearDelta(projectile.FaceX, cfg.Projectile.Speed, s.elapsedMs),
			Y: from.Y + arc.Delta(projectile.FlyClockMs, s.elapsedMs)*cfg.Projectile.GravityWeight,
		}
		projectile.FlyClockMs += s.elapsedMs
		projectile.Pos = to

		if !s.impactActors(e, actors) {
			continue
		}

		if platform := s.findImpact(from, to); platform != nil {
			projectile = components.Projectile.Get(e)
			projectile.Pos = from
			projectile.FaceX = 0
			s.listener.OnImpactPlatform(e, platform)
		}
	}
}

// impactActors reports every collidable actor the projectile overlaps, except
// the one that threw it. It returns false if the projectile was destroyed.
func (s *Simulation) impactActors(e *donburi.Entry, actors []*donburi.Entry) bool {
	for _, actor := range actors {
		projectile := components.Projectile.Get(e)
		if !actor.Valid() || actor.Entity() == projectile.Origin {
			continue
		}
		a := components.Actor.Get(actor)
		if !a.CanCollide || !projectile.Circle().Overlaps(a.Circle()) {
			continue
		}

		s.listener.OnImpactActor(e, actor)
		if !e.Valid() {
			return false
		}
	}
	return true
}
