package systems

import (
	"math"

	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/automoto/platcore/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// updateLadder climbs the held ladder, then grabs or releases ladders based on
// reach. Switching straight from one ladder to another only reports the reach.
func (s *Simulation) updateLadder(e *donburi.Entry) {
	actor := components.Actor.Get(e)

	current := s.resolve(actor.AnchorLadder, components.Ladder)
	if current == nil {
		actor.AnchorLadder = donburi.Null
	} else {
		ladder := components.Ladder.Get(current)
		dy := gamemath.LinearDelta(actor.Force.Y, cfg.Physics.ClimbSpeed, s.elapsedMs)
		actor.Force.Y = 0
		actor.Pos.Y = math.Max(actor.Pos.Y+dy, ladder.Pos.Y)
	}

	nearest := s.findLadder(actor.Pos)
	if sameEntry(nearest, current) {
		return
	}

	if nearest == nil {
		actor.AnchorLadder = donburi.Null
		actor.Force.Y = 0
		actor.JumpClockMs = s.arc().Apex()
		actor.Falling = false
		s.listener.OnLeaveLadder(e, current)
		return
	}

	actor.AnchorLadder = nearest.Entity()
	actor.AnchorPlatform = donburi.Null
	actor.JumpClockMs = s.arc().Apex()
	actor.Falling = false
	s.listener.OnReachLadder(e, nearest)
}

// findLadder returns the in-reach ladder horizontally closest to pt. Ties go
// to the older ladder.
func (s *Simulation) findLadder(pt math2.Vec2) *donburi.Entry {
	reach := cfg.Physics.LadderReach

	var (
		best     *donburi.Entry
		bestDist float64
	)
	for _, e := range s.query(gamemath.Rect{X: pt.X, Y: pt.Y}, tags.ResolvLadder, components.Ladder) {
		ladder := components.Ladder.Get(e)
		if !ladder.InReach(pt, reach) {
			continue
		}
		if dist := math.Abs(pt.X - ladder.Pos.X); best == nil || dist < bestDist {
			best, bestDist = e, dist
		}
	}
	return best
}

func sameEntry(a, b *donburi.Entry) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Entity() == b.Entity()
}
