package systems

import (
	"github.com/automoto/platcore/components"
	cfg "github.com/automoto/platcore/config"
	"github.com/automoto/platcore/shared/gamemath"
	"github.com/automoto/platcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// findLanding returns the platform whose top edge the segment from→to crosses
// from above, closest to from. Ties go to the older platform.
func (s *Simulation) findLanding(from, to math.Vec2) (*donburi.Entry, math.Vec2) {
	var (
		best     *donburi.Entry
		bestHit  math.Vec2
		bestDist float64
	)

	for _, e := range s.query(gamemath.BoundsOf(from, to), tags.ResolvPlatform, components.Platform) {
		platform := components.Platform.Get(e)
		hit, ok := crossTop(platform, from, to)
		if !ok {
			continue
		}
		if dist := gamemath.DistanceSq(from, hit); best == nil || dist < bestDist {
			best, bestHit, bestDist = e, hit, dist
		}
	}

	return best, bestHit
}

// crossTop tests a downward move against the platform's walkable edge. The
// hit point sits exactly on the edge.
func crossTop(platform *components.PlatformData, from, to math.Vec2) (math.Vec2, bool) {
	top := platform.Top()
	if !(to.Y < top && top <= from.Y) {
		return math.Vec2{}, false
	}
	if !platform.OverlapsX(from.X) && !platform.OverlapsX(to.X) {
		return math.Vec2{}, false
	}

	a, b := platform.TopEdge()
	hit, ok := gamemath.SegmentIntersection(from, to, a, b)
	if !ok {
		return math.Vec2{}, false
	}
	hit.Y = top
	return hit, true
}

// findSolid returns the first platform whose body contains pt.
func (s *Simulation) findSolid(pt math.Vec2) *donburi.Entry {
	for _, e := range s.query(gamemath.Rect{X: pt.X, Y: pt.Y}, tags.ResolvPlatform, components.Platform) {
		if components.Platform.Get(e).Contains(pt) {
			return e
		}
	}
	return nil
}

// findSupport returns the first platform whose top edge pt rests on.
func (s *Simulation) findSupport(pt math.Vec2) *donburi.Entry {
	for _, e := range s.query(gamemath.Rect{X: pt.X, Y: pt.Y}, tags.ResolvPlatform, components.Platform) {
		if components.Platform.Get(e).Supports(pt, cfg.Physics.SupportTolerance) {
			return e
		}
	}
	return nil
}

// findImpact returns the first platform a projectile moving from→to hits,
// either by ending inside the body or by crossing the top edge from above.
func (s *Simulation) findImpact(from, to math.Vec2) *donburi.Entry {
	for _, e := range s.query(gamemath.BoundsOf(from, to), tags.ResolvPlatform, components.Platform) {
		platform := components.Platform.Get(e)
		if platform.Contains(to) {
			return e
		}
		if _, ok := crossTop(platform, from, to); ok {
			return e
		}
	}
	return nil
}
